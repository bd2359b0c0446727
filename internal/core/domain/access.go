package domain

// CanAccessCustomer decides whether a caller may read data scoped to targetCustomerID.
// Admins may read any customer; everyone else only the customer linked to them.
func CanAccessCustomer(callerCustomerID *int64, callerIsAdmin bool, targetCustomerID int64) bool {
	if callerIsAdmin {
		return true
	}
	return callerCustomerID != nil && *callerCustomerID == targetCustomerID
}
