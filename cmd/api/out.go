package api

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/ghodss/yaml"
	"github.com/luscis/underlay/pkg/libol"
)

var Writer io.Writer = os.Stdout

func OutJson(data interface{}) error {
	if out, err := libol.Marshal(data, true); err == nil {
		fmt.Fprintln(Writer, string(out))
	} else {
		return err
	}
	return nil
}

func OutYaml(data interface{}) error {
	if out, err := yaml.Marshal(data); err == nil {
		fmt.Fprint(Writer, string(out))
	} else {
		return err
	}
	return nil
}

func OutTable(data interface{}, tmpl string) error {
	funcMap := template.FuncMap{
		"ps": func(space int, args ...interface{}) string {
			return fmt.Sprintf(fmt.Sprintf("%%%dv", space), args...)
		},
	}
	if tmpl, err := template.New("main").Funcs(funcMap).Parse(tmpl); err != nil {
		return err
	} else {
		if err := tmpl.Execute(Writer, data); err != nil {
			return err
		}
	}
	return nil
}

func Out(data interface{}, format string, tmpl string) error {
	libol.Debug("Out %s", format)
	switch format {
	case "json":
		return OutJson(data)
	case "table":
		if tmpl != "" {
			return OutTable(data, tmpl)
		}
		return OutYaml(data)
	default:
		return OutYaml(data)
	}
}
