package plugin

// Validate checks that m exposes configs → flat → languageOptions → parser
// and narrows it to a Plugin. The returned error is an *IncompatibleError.
func Validate(name string, m *Module) (*Plugin, error) {
	path := []string{"module"}
	if m == nil {
		return nil, &IncompatibleError{Name: name, Missing: path}
	}
	path = []string{"configs"}
	if m.Configs == nil {
		return nil, &IncompatibleError{Name: name, Missing: path}
	}
	path = append(path, FlatPreset)
	flat := m.Configs[FlatPreset]
	if flat == nil {
		return nil, &IncompatibleError{Name: name, Missing: path}
	}
	path = append(path, "languageOptions")
	if flat.LanguageOptions == nil {
		return nil, &IncompatibleError{Name: name, Missing: path}
	}
	path = append(path, "parser")
	if flat.LanguageOptions.Parser == nil {
		return nil, &IncompatibleError{Name: name, Missing: path}
	}

	meta := m.Meta
	if meta.Name == "" {
		meta.Name = name
	}
	return &Plugin{
		Name:         name,
		Meta:         meta,
		Parser:       flat.LanguageOptions.Parser,
		Rules:        m.Rules,
		newProcessor: m.NewProcessor,
	}, nil
}
