// Package excel2xml builds documents in the DSP XML import format.
//
// It offers one constructor per element kind of the format (root,
// permissions, resources, DSP base resources, properties and segment
// properties). Every property constructor validates its values and returns
// an error instead of producing an element the importer would reject.
//
// Usage:
//
//	root := excel2xml.MakeRoot("00A1", "import")
//	excel2xml.AppendPermissions(root)
//
//	res, _ := excel2xml.MakeResource("Anubis", ":Object", excel2xml.MustXSDID("Anubis"))
//	prop, err := excel2xml.MakeTextProp(":hasName", excel2xml.Value("Statue of Anubis"))
//	if err != nil {
//		return err
//	}
//	res.AddChild(prop)
//	root.AddChild(res)
//
//	err = excel2xml.WriteXML(root, "data-processed.xml")
package excel2xml
