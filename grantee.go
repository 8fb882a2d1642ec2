package driveops

const (
	granteeTypeUser   = "user"
	granteeTypeGroup  = "group"
	granteeTypeDomain = "domain"
	granteeTypeAnyone = "anyone"
)

// Grantee represents the entity a permission grants access to.
// This is a sealed interface - use the constructor functions User, Group, Domain, or Anyone.
type Grantee interface {
	String() string
	doNotImplement(Grantee)
}

// User creates a Grantee representing a specific user identified by email address.
func User(email string) Grantee {
	return GranteeUser{Email: email}
}

// Group creates a Grantee representing a Google Group identified by email address.
func Group(email string) Grantee {
	return GranteeGroup{Email: email}
}

// Domain creates a Grantee representing all users in a Google Workspace domain.
func Domain(domain string) Grantee {
	return GranteeDomain{Domain: domain}
}

// Anyone creates a Grantee representing all users (public access).
func Anyone() Grantee {
	return GranteeAnyone{}
}

// GranteeUser represents a specific user identified by email address.
type GranteeUser struct {
	Email string
}

func (GranteeUser) doNotImplement(Grantee) {}

func (g GranteeUser) String() string { return granteeTypeUser + ":" + g.Email }

// GranteeGroup represents a Google Group identified by email address.
type GranteeGroup struct {
	Email string
}

func (GranteeGroup) doNotImplement(Grantee) {}

func (g GranteeGroup) String() string { return granteeTypeGroup + ":" + g.Email }

// GranteeDomain represents all users in a Google Workspace domain.
type GranteeDomain struct {
	Domain string
}

func (GranteeDomain) doNotImplement(Grantee) {}

func (g GranteeDomain) String() string { return granteeTypeDomain + ":" + g.Domain }

// GranteeAnyone represents all users (public access).
type GranteeAnyone struct{}

func (GranteeAnyone) doNotImplement(Grantee) {}

func (GranteeAnyone) String() string { return granteeTypeAnyone }

// PermissionGrantee reads the grantee of a permission record produced by MapPermission.
// ok is false when the type is missing or unknown.
func PermissionGrantee(r *Record) (g Grantee, ok bool) {
	switch RecordString(r, "type") {
	case granteeTypeUser:
		return User(RecordString(r, "emailAddress")), true
	case granteeTypeGroup:
		return Group(RecordString(r, "emailAddress")), true
	case granteeTypeDomain:
		return Domain(RecordString(r, "domain")), true
	case granteeTypeAnyone:
		return Anyone(), true
	default:
		return nil, false
	}
}
