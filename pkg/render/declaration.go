package render

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-appgen/internal/naming"
	"github.com/goliatone/go-appgen/pkg/app"
	"github.com/goliatone/go-appgen/pkg/enum"
)

// Declaration is the target-neutral view of a definition that templates
// consume. Enum members are carried by symbolic name (ETHEREUM_MAINNET), with
// defaults already applied.
type Declaration struct {
	ID           string
	ConstantName string
	ClassName    string
	PackageName  string

	Name         string
	Description  string
	URL          string
	PrimaryColor string

	Groups   []GroupDeclaration
	Tags     []string
	Keywords []string
	// Links is the JSON encoding of the definition's links, "null" when unset.
	Links    json.RawMessage
	Networks []NetworkDeclaration
}

// GroupDeclaration is one entry of the groups mapping.
type GroupDeclaration struct {
	Key   string
	ID    string
	Type  string
	Label string
}

// NetworkDeclaration is one entry of the supportedNetworks mapping.
type NetworkDeclaration struct {
	Network string
	Actions []string
}

// ConstantName is the exported constant holding the definition:
// "my-app" becomes "MY_APP_DEFINITION".
func ConstantName(id string) string {
	return naming.UpperCase(id) + "_DEFINITION"
}

// ClassName is the registered definition type: "my-app" becomes
// "MyAppAppDefinition".
func ClassName(id string) string {
	return naming.TitleCase(id) + "AppDefinition"
}

// PackageName is the Go package a definition is generated into.
func PackageName(id string) string {
	return naming.Compact(id)
}

// GoEnumName spells a symbolic enum name the way app declares its constants:
// ("Network", "ETHEREUM_MAINNET") becomes "NetworkEthereumMainnet".
func GoEnumName(kind, name string) string {
	return kind + naming.TitleCase(name)
}

// NewDeclaration validates def, applies defaults and resolves every enum value
// to its symbolic name.
func NewDeclaration(def app.Definition) (Declaration, error) {
	if err := def.Validate(); err != nil {
		return Declaration{}, err
	}
	def = def.WithDefaults()

	decl := Declaration{
		ID:           def.ID,
		ConstantName: ConstantName(def.ID),
		ClassName:    ClassName(def.ID),
		PackageName:  PackageName(def.ID),
		Name:         def.Name,
		Description:  def.Description,
		URL:          def.URL,
		PrimaryColor: def.PrimaryColor,
		Keywords:     append([]string{}, def.Keywords...),
	}

	for _, entry := range def.Groups {
		typeName, err := symbol(app.GroupTypes, entry.Group.Type, "groups."+entry.Key+".type")
		if err != nil {
			return Declaration{}, err
		}
		decl.Groups = append(decl.Groups, GroupDeclaration{
			Key:   entry.Key,
			ID:    entry.Group.ID,
			Type:  typeName,
			Label: entry.Group.Label,
		})
	}

	for i, tag := range def.Tags {
		name, err := symbol(app.AppTags, tag, fmt.Sprintf("tags[%d]", i))
		if err != nil {
			return Declaration{}, err
		}
		decl.Tags = append(decl.Tags, name)
	}

	for _, entry := range def.SupportedNetworks {
		network, err := symbol(app.Networks, entry.Network, "supportedNetworks")
		if err != nil {
			return Declaration{}, err
		}
		nd := NetworkDeclaration{Network: network, Actions: []string{}}
		for i, action := range entry.Actions {
			name, err := symbol(app.AppActions, action, fmt.Sprintf("supportedNetworks.%s[%d]", entry.Network, i))
			if err != nil {
				return Declaration{}, err
			}
			nd.Actions = append(nd.Actions, name)
		}
		decl.Networks = append(decl.Networks, nd)
	}

	links, err := json.Marshal(def.Links)
	if err != nil {
		return Declaration{}, &app.MalformedInputError{Field: "links", Reason: err.Error()}
	}
	decl.Links = links

	return decl, nil
}

// KeywordsJSON returns the keywords as a JSON array.
func (d Declaration) KeywordsJSON() string {
	out, err := json.Marshal(d.Keywords)
	if err != nil || d.Keywords == nil {
		return "[]"
	}
	return string(out)
}

func symbol[T ~string](table *enum.Table[T], value T, field string) (string, error) {
	name, err := table.Name(value)
	if err != nil {
		return "", &app.UnknownEnumValueError{Field: field, Kind: table.Kind(), Value: string(value)}
	}
	return name, nil
}
