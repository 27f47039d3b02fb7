// Command gain-curve renders the gain-to-code mapping of every registered
// camera helper as an HTML chart. Useful when bringing up a new sensor
// module to eyeball the register curve against the datasheet.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/ipa-control/internal/camhelper"
)

func main() {
	var (
		out     = flag.String("out", "gain-curve.html", "output HTML file")
		maxGain = flag.Float64("max-gain", 16.0, "upper end of the gain range to plot")
		step    = flag.Float64("step", 0.25, "gain increment between samples")
	)
	flag.Parse()

	if *step <= 0 || *maxGain <= 1.0 {
		log.Fatal("step must be positive and max-gain above 1.0")
	}

	helpers := camhelper.BuiltinHelpers()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Sensor gain curves", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Gain code vs analogue gain", Subtitle: fmt.Sprintf("gain 1.0 to %.1f, step %.2f", *maxGain, *step)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "gain"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "code"}),
	)

	var gains []string
	for gain := 1.0; gain <= *maxGain; gain += *step {
		gains = append(gains, fmt.Sprintf("%.2f", gain))
	}
	line.SetXAxis(gains)

	for _, name := range helpers.Names() {
		helper, err := helpers.Get(name)
		if err != nil {
			log.Fatalf("helper %q: %v", name, err)
		}
		data := make([]opts.LineData, 0, len(gains))
		for gain := 1.0; gain <= *maxGain; gain += *step {
			data = append(data, opts.LineData{Value: helper.GainCode(gain)})
		}
		line.AddSeries(name, data)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		log.Fatalf("render chart: %v", err)
	}
	log.Printf("wrote %s", *out)
}
