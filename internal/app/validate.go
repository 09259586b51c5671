package app

import "context"

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	root, err := s.loadRoot(ctx, req.SchemaInput)
	if err != nil {
		return ValidateResult{}, err
	}
	result := ValidateResult{
		Version: root.Version(),
		Types:   len(root.Entries()),
	}
	if previous := root.Previous(); previous != nil {
		result.PreviousVersion = previous.Version()
	}
	return result, nil
}
