package generator

import (
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
)

// PageType is one of the fixed website page categories a template exists for.
type PageType int

const (
	Home PageType = iota
	AboutUs
	ContactUs
	Products
	Services
	Landing
	FAQs
)

var pageTypeNames = [...]string{
	Home:      "Home",
	AboutUs:   "About Us",
	ContactUs: "Contact Us",
	Products:  "Products",
	Services:  "Services",
	Landing:   "Landing",
	FAQs:      "FAQs",
}

// AllPageTypes returns the page types in display order.
func AllPageTypes() []PageType {
	return []PageType{Home, AboutUs, ContactUs, Products, Services, Landing, FAQs}
}

func (p PageType) Valid() bool {
	return p >= Home && p <= FAQs
}

func (p PageType) String() string {
	if !p.Valid() {
		return "PageType(" + strconv.Itoa(int(p)) + ")"
	}
	return pageTypeNames[p]
}

// Slug is the kebab-case form used on the command line, e.g. "about-us".
func (p PageType) Slug() string {
	return strings.ReplaceAll(strings.ToLower(p.String()), " ", "-")
}

func (p PageType) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &InvalidPageTypeError{Value: p.String()}
	}
	return []byte(p.String()), nil
}

func (p *PageType) UnmarshalText(b []byte) error {
	v, err := ParsePageType(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// JSONSchema publishes the closed set of display names.
func (PageType) JSONSchema() *jsonschema.Schema {
	enum := make([]any, 0, len(pageTypeNames))
	for _, n := range pageTypeNames {
		enum = append(enum, n)
	}
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        enum,
		Default:     Home.String(),
		Description: "Website page the copy is written for",
	}
}

// ParsePageType accepts a display name ("About Us") or slug ("about-us"), case-insensitively.
func ParsePageType(s string) (PageType, error) {
	v := strings.TrimSpace(s)
	for _, p := range AllPageTypes() {
		if strings.EqualFold(v, p.String()) || strings.EqualFold(v, p.Slug()) {
			return p, nil
		}
	}
	return 0, &InvalidPageTypeError{Value: s}
}

func pageTypeList() string {
	return strings.Join(pageTypeNames[:], ", ")
}
