package gen

import "text/template"

// helperTemplates renders the five buffer routines of a composite type. Templates are
// named "<routine>_<kind>", or just "<routine>" when the body does not depend on the
// kind. Bodies start at column zero and use {{.I}} as one indentation unit.
var helperTemplates = template.Must(template.New("helpers").Parse(`
{{- define "calculate_write_size_optional" -}}
@staticmethod
def {{.Routine}}(v):
{{.I}}if v is None:
{{.I}}{{.I}}return {{.TagSize}}
{{.I}}return {{.TagSize}} + {{.InnerSize}}
{{end}}

{{- define "calculate_write_size_sequence" -}}
@staticmethod
def {{.Routine}}(v):
{{.I}}return {{.CountSize}} + sum({{.InnerSize}} for {{.Item}} in v)
{{end}}

{{- define "calculate_write_size_map" -}}
@staticmethod
def {{.Routine}}(v):
{{.I}}return {{.CountSize}} + sum({{.KeySize}} + {{.InnerSize}} for ({{.Key}}, {{.Value}}) in v.items())
{{end}}

{{- define "calculate_write_size_record" -}}
@staticmethod
def {{.Routine}}(v):
{{.I}}return {{if .Fields}}{{range $i, $f := .Fields}}{{if $i}} + {{end}}{{$f.Size}}{{end}}{{else}}0{{end}}
{{end}}

{{- define "alloc_from" -}}
@staticmethod
def {{.Routine}}(v):
{{.I}}with RustBuffer.allocWithBuilder(RustBuffer.{{.SizeRoutine}}(v)) as builder:
{{.I}}{{.I}}builder.{{.WriteRoutine}}(v)
{{.I}}{{.I}}return builder.finalize()
{{end}}

{{- define "consume_into" -}}
def {{.Routine}}(self):
{{.I}}with self.consumeWithStream() as stream:
{{.I}}{{.I}}return stream.{{.ReadRoutine}}()
{{end}}

{{- define "write_optional" -}}
def {{.Routine}}(self, v):
{{.I}}if v is None:
{{.I}}{{.I}}self.writeU8({{.Absent}})
{{.I}}else:
{{.I}}{{.I}}self.writeU8({{.Present}})
{{.I}}{{.I}}{{.InnerWrite}}
{{end}}

{{- define "write_sequence" -}}
def {{.Routine}}(self, v):
{{.I}}self.writeI32(len(v))
{{.I}}for {{.Item}} in v:
{{.I}}{{.I}}{{.InnerWrite}}
{{end}}

{{- define "write_map" -}}
def {{.Routine}}(self, v):
{{.I}}self.writeI32(len(v))
{{.I}}for ({{.Key}}, {{.Value}}) in sorted(v.items()):
{{.I}}{{.I}}{{.KeyWrite}}
{{.I}}{{.I}}{{.InnerWrite}}
{{end}}

{{- define "write_record" -}}
def {{.Routine}}(self, v):
{{range .Fields}}{{$.I}}{{.Write}}
{{else}}{{.I}}pass
{{end}}
{{- end}}

{{- define "read_optional" -}}
def {{.Routine}}(self):
{{.I}}tag = self.readU8()
{{.I}}if tag == {{.Absent}}:
{{.I}}{{.I}}return None
{{.I}}if tag == {{.Present}}:
{{.I}}{{.I}}return {{.InnerRead}}
{{.I}}raise ValueError("Unexpected flag byte for {{.Name}}")
{{end}}

{{- define "read_sequence" -}}
def {{.Routine}}(self):
{{.I}}count = self.readI32()
{{.I}}if count < 0:
{{.I}}{{.I}}raise ValueError("Unexpected negative sequence length")
{{.I}}return [{{.InnerRead}} for {{.Item}} in range(count)]
{{end}}

{{- define "read_map" -}}
def {{.Routine}}(self):
{{.I}}count = self.readI32()
{{.I}}if count < 0:
{{.I}}{{.I}}raise ValueError("Unexpected negative map size")
{{.I}}items = {}
{{.I}}for {{.Item}} in range(count):
{{.I}}{{.I}}key = self.readString()
{{.I}}{{.I}}items[key] = {{.InnerRead}}
{{.I}}return items
{{end}}

{{- define "read_record" -}}
def {{.Routine}}(self):
{{if .Fields}}{{.I}}return {{.Class}}(
{{range .Fields}}{{$.I}}{{$.I}}{{.Attr}}={{.Read}},
{{end}}{{.I}})
{{else}}{{.I}}return {{.Class}}()
{{end}}
{{- end}}
`))
