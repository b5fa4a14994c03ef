package types

// ParamSection is a named group of parameters for UI layout.
type ParamSection struct {
	Name   string
	Params []ParamConfig
}

// GetParamSections splits params into the ungrouped ones and named sections.
// Sections appear in the order their name is first seen and keep the input
// order of their members.
func GetParamSections(params []ParamConfig) (unsectioned []ParamConfig, sections []ParamSection) {
	index := make(map[string]int)
	for _, p := range params {
		name := p.Base().Section
		if name == "" {
			unsectioned = append(unsectioned, p)
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(sections)
			index[name] = i
			sections = append(sections, ParamSection{Name: name})
		}
		sections[i].Params = append(sections[i].Params, p)
	}
	return unsectioned, sections
}
