package decorator

import "github.com/arclight-dev/objcswift/intention"

// PropertyElement adapts a PropertyIntention to DecoratableElement.
type PropertyElement struct {
	*intention.PropertyIntention
}

func (e PropertyElement) AccessLevel() intention.AccessLevel { return e.Header.AccessLevel }
func (e PropertyElement) IsStatic() bool                     { return false }
func (e PropertyElement) IsOverride() bool                   { return false }
func (e PropertyElement) IsConvenience() bool                { return false }
func (e PropertyElement) IsMutating() bool                   { return false }
func (e PropertyElement) IsProtocolOptional() bool            { return false }

func (e PropertyElement) Setter() (intention.AccessLevel, bool) {
	if !e.Storage.HasExplicitSetterAccess {
		return 0, false
	}
	return e.Storage.SetterAccessLevel, true
}

func (e PropertyElement) Ownership() (intention.Ownership, bool) {
	if e.IsComputed {
		return 0, false
	}
	return e.Storage.Ownership, true
}

// MethodElement adapts a MethodIntention to DecoratableElement.
type MethodElement struct {
	*intention.MethodIntention
}

func (e MethodElement) AccessLevel() intention.AccessLevel   { return e.Header.AccessLevel }
func (e MethodElement) IsStatic() bool                       { return e.MethodIntention.IsStatic }
func (e MethodElement) IsOverride() bool                     { return e.MethodIntention.IsOverride }
func (e MethodElement) IsConvenience() bool                  { return false }
func (e MethodElement) IsMutating() bool                     { return e.MutatingValue }
func (e MethodElement) IsProtocolOptional() bool              { return e.MethodIntention.IsOptional }
func (e MethodElement) Setter() (intention.AccessLevel, bool) { return 0, false }
func (e MethodElement) Ownership() (intention.Ownership, bool) { return 0, false }

// InitElement adapts an InitIntention to DecoratableElement.
type InitElement struct {
	*intention.InitIntention
}

func (e InitElement) AccessLevel() intention.AccessLevel    { return e.Header.AccessLevel }
func (e InitElement) IsStatic() bool                        { return false }
func (e InitElement) IsOverride() bool                      { return false }
func (e InitElement) IsConvenience() bool                   { return e.InitIntention.IsConvenience }
func (e InitElement) IsMutating() bool                      { return false }
func (e InitElement) IsProtocolOptional() bool               { return false }
func (e InitElement) Setter() (intention.AccessLevel, bool)  { return 0, false }
func (e InitElement) Ownership() (intention.Ownership, bool) { return 0, false }
