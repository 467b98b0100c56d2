package main

import (
	"encoding/xml"
	"io"
	"os"
	"path"
	"strings"
	"text/template"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// maxBitsPerWord caps one packed run of consecutive bit fields. A run is
// encoded as a single 16-bit word, so a longer run cannot be represented.
const maxBitsPerWord = 16

// maxProperties caps the basic-properties set. Presence bits occupy one
// 16-bit word and position 0 is never assigned, so 15 positions remain.
const maxProperties = 15

var baseDomainsMap = map[string]string{
	"octet":     "byte",
	"short":     "uint16",
	"long":      "uint32",
	"longlong":  "uint64",
	"timestamp": "uint64",
	"shortstr":  "string",
	"longstr":   "[]byte",
	"bit":       "bool",
	"table":     "*Table",
}

var readersMap = map[string]string{
	"octet":     "ReadOctet",
	"short":     "ReadShort",
	"long":      "ReadLong",
	"longlong":  "ReadLonglong",
	"timestamp": "ReadTimestamp",
	"shortstr":  "ReadShortstr",
	"longstr":   "ReadLongstr",
	"table":     "ReadTable",
}

var writersMap = map[string]string{
	"octet":     "WriteOctet",
	"short":     "WriteShort",
	"long":      "WriteLong",
	"longlong":  "WriteLonglong",
	"timestamp": "WriteTimestamp",
	"shortstr":  "WriteShortstr",
	"longstr":   "WriteLongstr",
	"table":     "WriteTable",
}

type Amqp struct {
	Constants []*Constant `xml:"constant"`
	Domains   []*Domain   `xml:"domain"`
	Classes   []*Class    `xml:"class"`
}

type Constant struct {
	Name   string `xml:"name,attr"`
	Value  uint16 `xml:"value,attr"`
	GoName string
}

type Domain struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
}

type Class struct {
	Name    string    `xml:"name,attr"`
	Id      uint16    `xml:"index,attr"`
	Methods []*Method `xml:"method"`
	Fields  []*Field  `xml:"field"`
	GoName  string
}

type Method struct {
	Name   string   `xml:"name,attr"`
	Id     uint16   `xml:"index,attr"`
	Fields []*Field `xml:"field"`
	GoName string
	// Groups is the field list with maximal runs of consecutive bit
	// fields collapsed into one group each
	Groups []*Group
}

type Field struct {
	Name       string `xml:"name,attr"`
	Domain     string `xml:"domain,attr"`
	Type       string `xml:"type,attr"`
	GoName     string
	GoType     string
	ReaderFunc string
	WriterFunc string
	IsBit      bool
	// BitIndex is the field position inside its bit run; BitPos is the
	// presence-bit position of a basic property, starting from 1
	BitIndex int
	BitPos   int
	// Deref marks property values written through a pointer
	Deref bool
}

type Group struct {
	IsBits bool
	Fields []*Field
}

const constantsTemplate = `package amqp
{{range .Constants}}
const {{.GoName}} = {{.Value}}
{{end}}{{range .Classes}}
const Class{{.GoName}} = {{.Id}}
{{end}}
// ConstantsNameMap maps reply codes to their protocol names
var ConstantsNameMap = map[uint16]string{
{{range .Constants}}
	{{.Value}}: "{{.Name | upper}}",
{{end}}}
`

const methodsTemplate = `package amqp

import (
	"fmt"
	"io"
)

// Method is the interface implemented by all amqp method frames
type Method interface {
	Name() string
	FrameType() byte
	ClassIdentifier() uint16
	MethodIdentifier() uint16
	Read(reader io.Reader) (err error)
	Write(writer io.Writer) (err error)
}
{{range .Classes}}
// {{.GoName}} methods
{{$classId := .Id}}{{range .Methods}}
type {{.GoName}} struct {
{{range .Fields}}	{{.GoName}} {{.GoType}}
{{end}}}

func (method *{{.GoName}}) Name() string {
	return "{{.GoName}}"
}

func (method *{{.GoName}}) FrameType() byte {
	return 1
}

func (method *{{.GoName}}) ClassIdentifier() uint16 {
	return {{$classId}}
}

func (method *{{.GoName}}) MethodIdentifier() uint16 {
	return {{.Id}}
}

func (method *{{.GoName}}) Read(reader io.Reader) (err error) {
{{range .Groups}}{{if .IsBits}}
	bits, err := ReadShort(reader)
	if err != nil {
		return err
	}
{{range .Fields}}
	method.{{.GoName}} = bits&(1<<{{.BitIndex}}) != 0
{{end}}{{else}}{{range .Fields}}
	method.{{.GoName}}, err = {{.ReaderFunc}}(reader)
	if err != nil {
		return err
	}
{{end}}{{end}}{{end}}
	return
}

func (method *{{.GoName}}) Write(writer io.Writer) (err error) {
{{range .Groups}}{{if .IsBits}}
	var bits uint16
{{range .Fields}}
	if method.{{.GoName}} {
		bits |= 1 << {{.BitIndex}}
	}
{{end}}
	if err = WriteShort(writer, bits); err != nil {
		return err
	}
{{else}}{{range .Fields}}
	if err = {{.WriterFunc}}(writer, method.{{.GoName}}); err != nil {
		return err
	}
{{end}}{{end}}{{end}}
	return
}
{{end}}{{end}}
// ReadMethod reads class id and method id and dispatches to the matching
// method codec
func ReadMethod(reader io.Reader) (Method, error) {
	classId, err := ReadShort(reader)
	if err != nil {
		return nil, err
	}

	methodId, err := ReadShort(reader)
	if err != nil {
		return nil, err
	}
	switch classId {
{{range .Classes}}
	case {{.Id}}:
		switch methodId {
{{range .Methods}}
		case {{.Id}}:
			var method = &{{.GoName}}{}
			if err := method.Read(reader); err != nil {
				return nil, err
			}
			return method, nil
{{end}}		}
		return nil, fmt.Errorf("%w: class {{.Id}}, method %d", ErrUnknownMethod, methodId)
{{end}}	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownClass, classId)
}

// WriteMethod writes class id, method id and the method payload
func WriteMethod(writer io.Writer, method Method) (err error) {
	if err = WriteShort(writer, method.ClassIdentifier()); err != nil {
		return err
	}
	if err = WriteShort(writer, method.MethodIdentifier()); err != nil {
		return err
	}

	if err = method.Write(writer); err != nil {
		return err
	}

	return
}
`

const propertiesTemplate = `package amqp

import (
	"io"
)

// BasicPropertyList represents the optional properties of the basic class.
// Each property owns a fixed presence bit, assigned in declaration order
// starting from position 1. Position 0 is never assigned.
type BasicPropertyList struct {
{{range .}}	{{.GoName}} {{.GoType}}
{{end}}}

// NewBasicPropertyList returns new empty BasicPropertyList
func NewBasicPropertyList() *BasicPropertyList {
	return &BasicPropertyList{}
}

// Read reads the properties whose presence bits are set in propertyFlags,
// in declaration order
func (pList *BasicPropertyList) Read(reader io.Reader, propertyFlags uint16) (err error) {
{{range .}}
	if propertyFlags&(1<<{{.BitPos}}) != 0 {
		value, err := {{.ReaderFunc}}(reader)
		if err != nil {
			return err
		}
		pList.{{.GoName}} = {{if .Deref}}&value{{else}}value{{end}}
	}
{{end}}
	return
}

// Write writes the present properties in declaration order and returns the
// presence mask with one bit set per written property
func (pList *BasicPropertyList) Write(writer io.Writer) (propertyFlags uint16, err error) {
{{range .}}
	if pList.{{.GoName}} != nil {
		propertyFlags |= 1 << {{.BitPos}}
		if err = {{.WriterFunc}}(writer, {{if .Deref}}*{{end}}pList.{{.GoName}}); err != nil {
			return
		}
	}
{{end}}
	return
}
`

func (amqp *Amqp) resolveDomains() map[string]string {
	domainAliases := map[string]string{}
	for _, domain := range amqp.Domains {
		if _, ok := baseDomainsMap[domain.Name]; !ok {
			domainAliases[domain.Name] = domain.Type
		}
	}
	return domainAliases
}

func resolveField(field *Field, domainAliases map[string]string) string {
	domainKey := field.Domain
	if domainKey == "" {
		domainKey = field.Type
	}
	if dk, ok := domainAliases[domainKey]; ok {
		domainKey = dk
	}

	goType, ok := baseDomainsMap[domainKey]
	if !ok {
		log.Fatalf("schema inconsistency: field '%s' has unmapped domain '%s'", field.Name, domainKey)
	}

	field.GoName = kebabToCamel(field.Name)
	field.GoType = goType
	field.IsBit = domainKey == "bit"
	if !field.IsBit {
		field.ReaderFunc = readersMap[domainKey]
		field.WriterFunc = writersMap[domainKey]
	}
	return domainKey
}

// groupFields collapses maximal runs of consecutive bit fields into one
// group each. Non-adjacent bit fields stay in separate runs.
func groupFields(method *Method) {
	var run *Group
	for _, field := range method.Fields {
		if !field.IsBit {
			run = nil
			method.Groups = append(method.Groups, &Group{Fields: []*Field{field}})
			continue
		}

		if run == nil {
			run = &Group{IsBits: true}
			method.Groups = append(method.Groups, run)
		}
		field.BitIndex = len(run.Fields)
		run.Fields = append(run.Fields, field)
		if len(run.Fields) > maxBitsPerWord {
			log.Fatalf("schema inconsistency: method '%s' has a run of more than %d consecutive bit fields",
				method.Name, maxBitsPerWord)
		}
	}
}

func (amqp *Amqp) prepareConstants() {
	for _, constant := range amqp.Constants {
		constant.GoName = kebabToCamel(constant.Name)
	}
}

func (amqp *Amqp) prepareMethods() {
	domainAliases := amqp.resolveDomains()

	for _, class := range amqp.Classes {
		class.GoName = kebabToCamel(class.Name)
		for _, method := range class.Methods {
			method.GoName = kebabToCamel(class.Name + "-" + method.Name)
			for _, field := range method.Fields {
				resolveField(field, domainAliases)
			}
			groupFields(method)
		}
	}
}

// prepareProperties assigns presence-bit positions 1..N to the basic-class
// property fields in declaration order
func (amqp *Amqp) prepareProperties() []*Field {
	domainAliases := amqp.resolveDomains()

	var properties []*Field
	for _, class := range amqp.Classes {
		if class.Name != "basic" {
			continue
		}
		for i, field := range class.Fields {
			resolveField(field, domainAliases)
			if field.IsBit {
				log.Fatalf("schema inconsistency: property '%s' has domain 'bit'", field.Name)
			}
			field.BitPos = i + 1
			field.Deref = field.GoType != "*Table"
			if field.Deref {
				field.GoType = "*" + field.GoType
			}
			properties = append(properties, field)
		}
	}

	if len(properties) > maxProperties {
		log.Fatalf("schema inconsistency: %d basic properties, presence mask holds at most %d",
			len(properties), maxProperties)
	}
	return properties
}

func (amqp *Amqp) saveConstants(wr io.Writer) error {
	t := template.Must(template.New("constantsTemplate").Funcs(template.FuncMap{
		"upper": strings.ToUpper,
	}).Parse(constantsTemplate))
	return t.Execute(wr, amqp)
}

func (amqp *Amqp) saveMethods(wr io.Writer) error {
	t := template.Must(template.New("methodsTemplate").Parse(methodsTemplate))
	return t.Execute(wr, amqp)
}

func (amqp *Amqp) saveProperties(wr io.Writer, properties []*Field) error {
	t := template.Must(template.New("propertiesTemplate").Parse(propertiesTemplate))
	return t.Execute(wr, properties)
}

func main() {
	specFile := pflag.String("spec-file", "protocol/amqp0-9-1.xml", "Path to the AMQP protocol definition")
	outDir := pflag.String("out-dir", "amqp", "Directory for the generated files")
	logLevel := pflag.String("log-level", "info", "Log level")
	pflag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(level)

	file, err := os.ReadFile(*specFile)
	if err != nil {
		log.Fatalf("read spec: %s", err)
	}

	var amqp Amqp
	if err = xml.Unmarshal(file, &amqp); err != nil {
		log.Fatalf("parse spec: %s", err)
	}

	amqp.prepareConstants()
	amqp.prepareMethods()
	properties := amqp.prepareProperties()

	save := func(name string, fn func(io.Writer) error) {
		target := path.Join(*outDir, name)
		out, err := os.Create(target)
		if err != nil {
			log.Fatalf("create %s: %s", target, err)
		}
		defer out.Close()
		if err = fn(out); err != nil {
			log.Fatalf("generate %s: %s", target, err)
		}
		log.Infof("generated %s", target)
	}

	save("constants_generated.go", amqp.saveConstants)
	save("methods_generated.go", amqp.saveMethods)
	save("properties_generated.go", func(wr io.Writer) error {
		return amqp.saveProperties(wr, properties)
	})
}

func kebabToCamel(kebab string) (camel string) {
	parts := strings.Split(kebab, "-")
	for _, part := range parts {
		camel += strings.Title(part)
	}
	return
}
