package excel2xml

import "github.com/beevik/etree"

const (
	// Namespace is the default namespace of the import format.
	Namespace = "https://dasch.swiss/schema"
	// XSINamespace is the XML Schema instance namespace.
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"
	// SchemaLocation points to the XSD of the import format.
	SchemaLocation = "https://dasch.swiss/schema https://raw.githubusercontent.com/dasch-swiss/dsp-tools/main/src/dsp_tools/resources/schema/data.xsd"
)

// MakeRoot creates the <knora> root element of a data file.
func MakeRoot(shortcode, defaultOntology string) *etree.Element {
	root := etree.NewElement("knora")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("xmlns:xsi", XSINamespace)
	root.CreateAttr("xsi:schemaLocation", SchemaLocation)
	root.CreateAttr("shortcode", shortcode)
	root.CreateAttr("default-ontology", defaultOntology)
	return root
}

// grant is one <allow> entry of a permissions block.
type grant struct {
	group  string
	rights string
}

var defaultPermissions = []struct {
	id     string
	grants []grant
}{
	{ResDefault, []grant{{"UnknownUser", "V"}, {"KnownUser", "V"}, {"ProjectMember", "D"}, {"ProjectAdmin", "CR"}}},
	{ResRestricted, []grant{{"KnownUser", "V"}, {"ProjectMember", "D"}, {"ProjectAdmin", "CR"}}},
	{PropDefault, []grant{{"UnknownUser", "V"}, {"KnownUser", "V"}, {"ProjectMember", "D"}, {"ProjectAdmin", "CR"}}},
	{PropRestricted, []grant{{"KnownUser", "V"}, {"ProjectMember", "D"}, {"ProjectAdmin", "CR"}}},
}

// AppendPermissions appends the four default permission blocks to root
// and returns it.
func AppendPermissions(root *etree.Element) *etree.Element {
	for _, p := range defaultPermissions {
		perm := root.CreateElement("permissions")
		perm.CreateAttr("id", p.id)
		for _, g := range p.grants {
			allow := perm.CreateElement("allow")
			allow.CreateAttr("group", g.group)
			allow.SetText(g.rights)
		}
	}
	return root
}
