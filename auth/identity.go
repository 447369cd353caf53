package auth

// Role names stored in user rows and JWT claims.
const (
	RoleGuest    = "guest"
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

type Capability string

const (
	CapViewAllOrders Capability = "view_all_orders"
	CapManageOrders  Capability = "manage_orders"
	CapAddProduct    Capability = "add_product"
	CapChangeProduct Capability = "change_product"
	CapDeleteProduct Capability = "delete_product"
)

var roleCaps = map[string][]Capability{
	RoleStaff: {CapViewAllOrders, CapManageOrders},
	RoleAdmin: {CapViewAllOrders, CapManageOrders, CapAddProduct, CapChangeProduct, CapDeleteProduct},
}

// Identity is the resolved caller, threaded explicitly into every operation
// that needs it. UserID is nil for anonymous guest sessions.
type Identity struct {
	UserID *uint
	Name   string
	Role   string
}

// Can reports whether the identity holds the capability. Safe on nil.
func (id *Identity) Can(cap Capability) bool {
	if id == nil {
		return false
	}
	for _, c := range roleCaps[id.Role] {
		if c == cap {
			return true
		}
	}
	return false
}

// Authenticated reports whether the caller is a known user (not a guest).
func (id *Identity) Authenticated() bool {
	return id != nil && id.UserID != nil
}
