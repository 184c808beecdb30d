package common

// EntityNames are the identifiers derived from an entity name and used by
// every generated artifact that refers to the entity.
type EntityNames struct {
	Interface       string // UserProfileTemplate
	Constant        string // userProfileTemplate
	Factory         string // UserProfileFactory
	FactoryInstance string // userProfileFactory
}

// DeriveNames computes the canonical identifiers for an entity.
// Two distinct entity names may collapse to the same identifiers; that is not detected here.
func DeriveNames(entityName string) EntityNames {
	pascal := ToPascalCase(entityName)
	camel := ToCamelCase(entityName)
	return EntityNames{
		Interface:       pascal + "Template",
		Constant:        camel + "Template",
		Factory:         pascal + "Factory",
		FactoryInstance: camel + "Factory",
	}
}
