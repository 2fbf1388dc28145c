package constraint

// BooleanProvider accepts true and false and nothing else.
type BooleanProvider struct{}

// Boolean returns the boolean provider.
func Boolean() *BooleanProvider { return &BooleanProvider{} }

func (p *BooleanProvider) Kind() Kind { return KindBoolean }

func (p *BooleanProvider) Compile() (Check, error) {
	return func(v any, name string) error {
		if _, ok := v.(bool); !ok {
			return invalidType(name, KindBoolean, v)
		}
		return nil
	}, nil
}
