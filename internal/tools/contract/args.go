package contract

import (
	"fmt"

	"glforge/internal/gen"
	"glforge/internal/tools"
)

// stringArg extracts a string argument; absent or mistyped values yield "".
func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

// boolArg extracts a boolean argument with a default.
func boolArg(args map[string]any, key string, def bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return def
}

// stringSliceArg extracts a []string from a JSON array argument.
func stringSliceArg(args map[string]any, key string) ([]string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an array of strings", tools.ErrInvalidArgType, key)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s must contain only strings", tools.ErrInvalidArgType, key)
		}
		out = append(out, s)
	}
	return out, nil
}

// objectSliceArg extracts a slice of JSON objects.
func objectSliceArg(args map[string]any, key string) ([]map[string]any, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an array of objects", tools.ErrInvalidArgType, key)
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s must contain only objects", tools.ErrInvalidArgType, key)
		}
		out = append(out, obj)
	}
	return out, nil
}

// fieldSpecsArg decodes storage field objects ({name, type, description}).
func fieldSpecsArg(args map[string]any, key string) ([]gen.FieldSpec, error) {
	objs, err := objectSliceArg(args, key)
	if err != nil {
		return nil, err
	}
	fields := make([]gen.FieldSpec, 0, len(objs))
	for _, obj := range objs {
		fields = append(fields, gen.FieldSpec{
			Name:        stringArg(obj, "name"),
			Type:        stringArg(obj, "type"),
			Description: stringArg(obj, "description"),
		})
	}
	return fields, nil
}

// metadataFieldsArg decodes metadata field objects ({name, type}).
func metadataFieldsArg(args map[string]any, key string) ([]gen.MetadataFieldSpec, error) {
	objs, err := objectSliceArg(args, key)
	if err != nil {
		return nil, err
	}
	fields := make([]gen.MetadataFieldSpec, 0, len(objs))
	for _, obj := range objs {
		fields = append(fields, gen.MetadataFieldSpec{
			Name: stringArg(obj, "name"),
			Type: stringArg(obj, "type"),
		})
	}
	return fields, nil
}

// constructorArgsArg decodes constructor argument objects
// ({name, type, value, description}).
func constructorArgsArg(args map[string]any, key string) ([]gen.ConstructorArgSpec, error) {
	objs, err := objectSliceArg(args, key)
	if err != nil {
		return nil, err
	}
	specs := make([]gen.ConstructorArgSpec, 0, len(objs))
	for _, obj := range objs {
		specs = append(specs, gen.ConstructorArgSpec{
			Name:        stringArg(obj, "name"),
			Type:        stringArg(obj, "type"),
			Value:       stringArg(obj, "value"),
			Description: stringArg(obj, "description"),
		})
	}
	return specs, nil
}
