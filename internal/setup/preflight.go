package setup

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ComponentStatus represents the presence of one piece of the graphics stack
type ComponentStatus struct {
	Name      string
	Installed bool
	Detail    string
}

// PreflightResult contains the results of the preflight check
type PreflightResult struct {
	Components []ComponentStatus
	DRMDriver  string // "panfrost", "jmgpu", ... empty when unknown
}

// Paths probed by RunPreflight. Tests point these at a temp dir.
type Paths struct {
	VulkanLoaders []string
	RenderNodes   string // glob
	DRMUevent     string
	BuildProp     string
}

// DefaultPaths are the usual locations on Linux and Android hosts
func DefaultPaths(buildProp string) Paths {
	return Paths{
		VulkanLoaders: []string{
			"/usr/lib/x86_64-linux-gnu/libvulkan.so.1",
			"/usr/lib/aarch64-linux-gnu/libvulkan.so.1",
			"/usr/lib/libvulkan.so.1",
			"/usr/lib64/libvulkan.so.1",
			"/system/lib64/libvulkan.so",
		},
		RenderNodes: "/dev/dri/renderD*",
		DRMUevent:   "/sys/class/drm/card0/device/uevent",
		BuildProp:   buildProp,
	}
}

// RunPreflight checks the pieces the graphics backends depend on
func RunPreflight(paths Paths) *PreflightResult {
	result := &PreflightResult{}
	result.DRMDriver = detectDRMDriver(paths.DRMUevent)

	result.Components = []ComponentStatus{
		checkAnyFile("vulkan loader", paths.VulkanLoaders),
		checkGlob("drm render node", paths.RenderNodes),
		checkDRMDriver(result.DRMDriver),
		checkComponent("nvidia-smi", "nvidia-smi"),
		checkAnyFile("build.prop", []string{paths.BuildProp}),
	}
	return result
}

// MissingComponents returns the names of components that are not present
func (r *PreflightResult) MissingComponents() []string {
	var missing []string
	for _, c := range r.Components {
		if !c.Installed {
			missing = append(missing, c.Name)
		}
	}
	return missing
}

// PrintStatus prints the preflight check results
func (r *PreflightResult) PrintStatus() {
	for _, c := range r.Components {
		if c.Installed {
			fmt.Printf("  ✓ %s: %s\n", c.Name, c.Detail)
		} else {
			fmt.Printf("  ✗ %s: NOT FOUND\n", c.Name)
		}
	}
}

func checkComponent(name, binary string) ComponentStatus {
	cs := ComponentStatus{Name: name}
	path, err := exec.LookPath(binary)
	if err != nil {
		return cs
	}
	cs.Installed = true
	cs.Detail = path
	return cs
}

func checkAnyFile(name string, candidates []string) ComponentStatus {
	cs := ComponentStatus{Name: name}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			cs.Installed = true
			cs.Detail = p
			return cs
		}
	}
	return cs
}

func checkGlob(name, pattern string) ComponentStatus {
	cs := ComponentStatus{Name: name}
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return cs
	}
	cs.Installed = true
	cs.Detail = strings.Join(matches, ", ")
	return cs
}

func checkDRMDriver(driver string) ComponentStatus {
	return ComponentStatus{Name: "drm driver", Installed: driver != "", Detail: driver}
}

// detectDRMDriver reads the DRIVER= line of the card's uevent file
func detectDRMDriver(uevent string) string {
	f, err := os.Open(uevent)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "DRIVER=") {
			return strings.TrimSpace(strings.TrimPrefix(line, "DRIVER="))
		}
	}
	return ""
}
