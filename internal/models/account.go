package models

// AccountStatusInactive marks accounts hidden from the owner's list.
const AccountStatusInactive = "Inactive"

// Account is a row of the accounts table. Only referenceid and status are
// interpreted; every other column is passed through untouched.
type Account map[string]interface{}

// ReferenceID returns the owning agent's reference id.
func (a Account) ReferenceID() string {
	s, _ := a["referenceid"].(string)
	return s
}

// Status returns the account status.
func (a Account) Status() string {
	s, _ := a["status"].(string)
	return s
}
