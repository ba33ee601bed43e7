package config

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/leapstack-labs/flatlint/pkg/core"
)

var (
	severityType    = reflect.TypeOf(core.Severity(0))
	ruleSettingType = reflect.TypeOf(core.RuleSetting{})
)

// decodeHook turns config-file spellings into typed values:
//
//	no-console: off
//	no-alert: 2
//	max-len: [warn, 120]
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		severityHook,
		ruleSettingHook,
		mapstructure.StringToSliceHookFunc(","),
	)
}

func severityHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != severityType {
		return data, nil
	}
	return toSeverity(data)
}

func ruleSettingHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != ruleSettingType {
		return data, nil
	}
	switch v := data.(type) {
	case []any:
		if len(v) == 0 {
			return nil, fmt.Errorf("rule setting list is empty")
		}
		sev, err := toSeverity(v[0])
		if err != nil {
			return nil, err
		}
		return core.RuleSetting{Severity: sev, Options: v[1:]}, nil
	case map[string]any:
		// Already in struct form.
		return data, nil
	default:
		sev, err := toSeverity(data)
		if err != nil {
			return nil, err
		}
		return core.RuleSetting{Severity: sev}, nil
	}
}

func toSeverity(data any) (core.Severity, error) {
	switch v := data.(type) {
	case core.Severity:
		return v, nil
	case bool:
		if !v {
			return core.SeverityOff, nil
		}
	case string:
		if sev, ok := core.ParseSeverity(v); ok {
			return sev, nil
		}
	case int:
		if sev, ok := core.SeverityFromInt(v); ok {
			return sev, nil
		}
	case int64:
		if sev, ok := core.SeverityFromInt(int(v)); ok {
			return sev, nil
		}
	case float64:
		if sev, ok := core.SeverityFromInt(int(v)); ok && float64(int(v)) == v {
			return sev, nil
		}
	}
	return core.SeverityOff, fmt.Errorf("invalid severity %v, must be off, warn, error or 0-2", data)
}
