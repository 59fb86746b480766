package app

// DefaultPrimaryColor is used when a definition leaves PrimaryColor empty.
const DefaultPrimaryColor = "#fff"

// Group describes one group of positions an app exposes.
type Group struct {
	ID    string    `json:"id" yaml:"id"`
	Type  GroupType `json:"type" yaml:"type"`
	Label string    `json:"label" yaml:"label"`
}

// GroupEntry binds a group to the key it is declared under.
type GroupEntry struct {
	Key   string
	Group Group
}

// Groups is an ordered mapping from key to Group. Decoders keep the order in
// which keys appear in the source document. A nil Groups means the mapping is
// absent; an empty, non-nil one is a valid mapping with no entries.
type Groups []GroupEntry

// Get returns the group declared under key.
func (g Groups) Get(key string) (Group, bool) {
	for _, entry := range g {
		if entry.Key == key {
			return entry.Group, true
		}
	}
	return Group{}, false
}

// Keys returns the group keys in declaration order.
func (g Groups) Keys() []string {
	keys := make([]string, 0, len(g))
	for _, entry := range g {
		keys = append(keys, entry.Key)
	}
	return keys
}

// NetworkActions lists the actions an app supports on one network.
type NetworkActions struct {
	Network Network
	Actions []AppAction
}

// SupportedNetworks is an ordered mapping from Network to actions. Like
// Groups, nil means absent.
type SupportedNetworks []NetworkActions

// Actions returns the actions declared for network.
func (s SupportedNetworks) Actions(network Network) ([]AppAction, bool) {
	for _, entry := range s {
		if entry.Network == network {
			return entry.Actions, true
		}
	}
	return nil, false
}

// Definition is a partially specified app definition. Only ID, Groups, Tags
// and SupportedNetworks are required; see Validate.
type Definition struct {
	ID                string            `json:"id" yaml:"id"`
	Name              string            `json:"name" yaml:"name"`
	Description       string            `json:"description" yaml:"description"`
	URL               string            `json:"url" yaml:"url"`
	Groups            Groups            `json:"groups" yaml:"groups"`
	Tags              []AppTag          `json:"tags" yaml:"tags"`
	Keywords          []string          `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Links             any               `json:"links,omitempty" yaml:"links,omitempty"`
	SupportedNetworks SupportedNetworks `json:"supportedNetworks" yaml:"supportedNetworks"`
	PrimaryColor      string            `json:"primaryColor,omitempty" yaml:"primaryColor,omitempty"`
}

// WithDefaults returns a copy with the optional fields defaulted: PrimaryColor
// becomes DefaultPrimaryColor and a nil Keywords becomes empty.
func (d Definition) WithDefaults() Definition {
	if d.PrimaryColor == "" {
		d.PrimaryColor = DefaultPrimaryColor
	}
	if d.Keywords == nil {
		d.Keywords = []string{}
	}
	return d
}

// AppDefinition satisfies Provider, so structs embedding a Definition can be
// registered directly.
func (d Definition) AppDefinition() Definition {
	return d
}
