package service

// contactFields is the selection set shared by every contact operation.
const contactFields = `
fragment ContactFields on Contact {
  _id
  ownerId
  emails
  phones
  name
  avatarUrl
  address
  bornAt
  bornAddress
  gender
  knownAt
  knownSource
  extraversionIntroversion
  intuitingSensing
  thinkingFeeling
  planingPerceiving
  tdp
  inboundTrust
  outboundTrust
  blurb
  workingOn
  desire
  title
  experience { title name }
  education { title name }
  linkedin
  facebook
  wechat
  github
  createdAt
  updatedAt
}`

const createContactQuery = `mutation createContact($createContactInput: CreateContactInput!) {
  createContact(createContactInput: $createContactInput) { ...ContactFields }
}` + contactFields

const updateContactQuery = `mutation updateContact($id: ID!, $updateContactInput: UpdateContactInput!) {
  updateContact(id: $id, updateContactInput: $updateContactInput) { ...ContactFields }
}` + contactFields

const contactQuery = `query contact($id: ID!) {
  contact(id: $id) { ...ContactFields }
}` + contactFields

const contactsQuery = `query contacts($offset: Int, $limit: Int) {
  contacts(offset: $offset, limit: $limit) { ...ContactFields }
}` + contactFields

const searchQuery = `query search($name: String!, $hmacs: HmacsInput) {
  search(name: $name, hmacs: $hmacs) { _id name }
}`
