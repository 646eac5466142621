package underlay

import "fmt"

// InvalidInputsError reports a required value missing from the input data
// model. Path names where the value can be set.
type InvalidInputsError struct {
	Path string
}

func (e *InvalidInputsError) Error() string {
	return fmt.Sprintf("invalid inputs: %s", e.Path)
}

func asRequired(dataModel string) error {
	return &InvalidInputsError{
		Path: fmt.Sprintf("%s.p2p_links.[].as or %s.p2p_links_profiles.[].as", dataModel, dataModel),
	}
}

func ipRequired(dataModel string) error {
	return &InvalidInputsError{
		Path: fmt.Sprintf("%s.p2p_links.[].ip, .subnet or .ip_pool", dataModel),
	}
}
