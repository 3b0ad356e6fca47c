package validate

import (
	"regexp"
	"strconv"
	"strings"

	"agroconnect/internal/domain"
)

var (
	// Indian PIN code: exactly six digits
	rePincode = regexp.MustCompile(`^[0-9]{6}$`)
	reEmail   = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reQ       = regexp.MustCompile(`^[A-Za-z0-9 _'\\-]{1,50}$`)
	reID      = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reSort    = regexp.MustCompile(`^(name|name-desc|price-low|price-high|category|organic|discount)$`)
)

// Shipping field messages, keyed by the JSON field name.
const (
	MsgFullName = "Full name must be at least 2 characters"
	MsgPhone    = "Phone number must be at least 10 digits"
	MsgEmail    = "Please enter a valid email address"
	MsgAddress  = "Please enter a complete address"
	MsgCity     = "City is required"
	MsgState    = "State is required"
	MsgPincode  = "Pincode must be 6 digits"
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Q validates a search query: trims, enforces allowed characters and max length
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1
	}
	return ClampQty(n)
}

// ClampQty bounds a requested add quantity to 1..50.
func ClampQty(n int) int {
	if n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	} // clamp to avoid abuse
	return n
}

// ID validates a simple resource identifier (cart line and order ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// ProductID parses a positive numeric product id.
func ProductID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Sort validates the catalog sort keys.
func Sort(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reSort.MatchString(s)
}

func Role(s string) (domain.Role, bool) {
	r := domain.Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len([]rune(s)) < 2 || len(s) > 100 {
		return "", false
	}
	return s, true
}

// Phone accepts any formatting as long as at least ten ASCII digits are present.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	digits := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits++
		}
	}
	return s, digits >= 10
}

func Pincode(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePincode.MatchString(s)
}

// Shipping trims every field of a and reports one message per invalid field.
// A nil map means the address is acceptable.
func Shipping(a domain.ShippingAddress) (domain.ShippingAddress, map[string]string) {
	errs := map[string]string{}
	out := domain.ShippingAddress{
		Landmark: strings.TrimSpace(a.Landmark),
		Notes:    strings.TrimSpace(a.Notes),
	}
	var ok bool
	if out.FullName, ok = Name(a.FullName); !ok {
		errs["fullName"] = MsgFullName
	}
	if out.Phone, ok = Phone(a.Phone); !ok {
		errs["phone"] = MsgPhone
	}
	if out.Email, ok = Email(a.Email); !ok {
		errs["email"] = MsgEmail
	}
	out.Address = strings.TrimSpace(a.Address)
	if len([]rune(out.Address)) < 10 {
		errs["address"] = MsgAddress
	}
	out.City = strings.TrimSpace(a.City)
	if len([]rune(out.City)) < 2 {
		errs["city"] = MsgCity
	}
	out.State = strings.TrimSpace(a.State)
	if len([]rune(out.State)) < 2 {
		errs["state"] = MsgState
	}
	if out.Pincode, ok = Pincode(a.Pincode); !ok {
		errs["pincode"] = MsgPincode
	}
	if len(errs) == 0 {
		return out, nil
	}
	return out, errs
}

// Password enforces a simple length window for login checks.
func Password(s string) bool {
	l := len(s)
	return l >= 6 && l <= 72
}
