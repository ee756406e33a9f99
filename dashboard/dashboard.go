package dashboard

import (
	"bytes"
	"html/template"

	"github.com/tickerboard/tickerboard/charts"
	"go.uber.org/zap"
)

// EchartsAssetsHost asset host of the chart runtime script
const EchartsAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

var documentTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.Group}} Analysis ({{.Window}})</title>
    <script src="{{.AssetsHost}}echarts.min.js"></script>
    <style>
        body { font-family: Arial, sans-serif; background: #f4f6f8; padding: 20px; }
        h1 { text-align: center; color: #003366; }
        .chart-container { margin-bottom: 50px; border: 1px solid #ccc; background: white; padding: 15px; border-radius: 10px; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
        .chart-container .container { margin: 0 auto; }
        .chart-container .item { margin: auto; }
        .empty-note { text-align: center; color: #666; }
    </style>
</head>
<body>
    <h1>{{.Group}} Interactive Financial Dashboard ({{.Window}})</h1>
{{- if .Charts}}
{{- range .Charts}}
    <div class="chart-container">
{{.Element}}
{{.Script}}
    </div>
{{- end}}
{{- else}}
    <p class="empty-note">No charts available for this group.</p>
{{- end}}
</body>
</html>
`))

type document struct {
	Group      string
	Window     string
	AssetsHost string
	Charts     []*charts.Chart
}

// Assemble render one self contained html document embedding all charts in input order
func Assemble(group, window string, rendered []*charts.Chart) ([]byte, error) {
	buffer := new(bytes.Buffer)
	err := documentTemplate.Execute(buffer, document{
		Group:      group,
		Window:     window,
		AssetsHost: EchartsAssetsHost,
		Charts:     rendered,
	})
	if err != nil {
		zap.L().Error("assemble dashboard failed",
			zap.Error(err),
			zap.String("group", group),
			zap.Int("charts", len(rendered)))
		return nil, err
	}

	return buffer.Bytes(), nil
}
