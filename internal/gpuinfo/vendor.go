package gpuinfo

import (
	"fmt"
	"strings"

	"github.com/emufront/gpucaps/internal/domain"
)

// Vendor is the coarse GPU vendor classification
type Vendor uint8

const (
	VendorUnknown Vendor = iota
	VendorARM
	VendorQualcomm
	VendorIntel
)

var vendorNames = map[Vendor]string{
	VendorUnknown:  "Unknown",
	VendorARM:      "ARM",
	VendorQualcomm: "Qualcomm",
	VendorIntel:    "Intel",
}

func (v Vendor) String() string {
	if name, ok := vendorNames[v]; ok {
		return name
	}
	return vendorNames[VendorUnknown]
}

func (v Vendor) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Vendor) UnmarshalText(text []byte) error {
	for vendor, name := range vendorNames {
		if name == string(text) {
			*v = vendor
			return nil
		}
	}
	return fmt.Errorf("unknown vendor %q", text)
}

var vendorTokens = []struct {
	vendor Vendor
	tokens []string
}{
	{vendor: VendorARM, tokens: []string{"arm", "mali"}},
	{vendor: VendorQualcomm, tokens: []string{"qualcomm", "adreno"}},
	{vendor: VendorIntel, tokens: []string{"intel"}},
}

func matchVendor(s string) Vendor {
	s = strings.ToLower(s)
	for _, vt := range vendorTokens {
		for _, token := range vt.tokens {
			if strings.Contains(s, token) {
				return vt.vendor
			}
		}
	}
	return VendorUnknown
}

// VendorOf checks the vendor string first and falls back to the renderer
func VendorOf(id domain.Identity) Vendor {
	if v := matchVendor(id.Vendor); v != VendorUnknown {
		return v
	}
	return matchVendor(id.Renderer)
}
