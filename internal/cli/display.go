package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emufront/gpucaps/internal/gpuinfo"
	"github.com/emufront/gpucaps/internal/settings"
)

// PrintHeader prints a section header
func PrintHeader(title string) {
	fmt.Printf("\n=== %s ===\n", title)
}

// PrintField prints a labeled field
func PrintField(label, value string) {
	fmt.Printf("  %-22s %s\n", label+":", value)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// PrintReport displays the GPU identity and capabilities
func PrintReport(r gpuinfo.Report) {
	PrintHeader("GPU Information")
	PrintField("Backend", r.Backend)
	PrintField("Detection", r.Status)
	PrintField("Renderer", r.Renderer)
	PrintField("Vendor", fmt.Sprintf("%s (%s)", r.Vendor, r.VendorClass))
	PrintField("Architecture", fmt.Sprintf("%s (%s)", r.Architecture, r.Codename))
	PrintField("Extensions", fmt.Sprintf("%d", len(strings.Fields(r.Extensions))))

	PrintHeader("Capabilities")
	PrintField("Tile elimination", yesNo(r.SupportsTileTransactionElimination))
	PrintField("Frame compression", yesNo(r.SupportsFrameCompression))
	PrintField("Vulkan", yesNo(r.SupportsModernGraphicsAPI))
	if r.Platform.SDKLevel > 0 || r.Platform.Release != "" {
		PrintField("Platform", fmt.Sprintf("Android %s (API %d)", r.Platform.Release, r.Platform.SDKLevel))
	}
}

// PrintClassification displays one renderer classification per line
func PrintClassification(renderer string, arch gpuinfo.Architecture) {
	fmt.Printf("  %-30s %-16s %-8s te=%s afbc=%s\n",
		renderer, arch, arch.Codename(),
		yesNo(arch.SupportsTileTransactionElimination()),
		yesNo(arch.SupportsFrameCompression()))
}

// PrintSettingsPage displays the hardware tweaks page
func PrintSettingsPage(p settings.Page) {
	PrintHeader("Hardware Tweaks")
	available := p.Available()
	if len(available) == 0 {
		fmt.Println("  (no tweaks available for this GPU)")
	}
	for _, t := range available {
		state := "off"
		if t.Value {
			state = "on"
		}
		fmt.Printf("  [%-3s] %-24s %s\n", state, t.Title, t.Key)
		fmt.Printf("        %s\n", t.Subtitle)
	}
	PrintHeader("GPU Information")
	PrintField("Renderer", p.Renderer)
}

// errOut receives PrintError output
var errOut io.Writer = os.Stderr

// PrintError prints an error message to stderr
func PrintError(message string) {
	fmt.Fprintf(errOut, "\nError: %s\n", message)
}
