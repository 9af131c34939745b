// Package classify maps free text to industry labels via ordered keyword lookup.
package classify

import "strings"

// keywordLabel pairs a lowercase keyword with the industry label it implies.
type keywordLabel struct {
	keyword string
	label   string
}

// industryKeywords is scanned in order and the first substring hit wins, so
// specific terms ("semiconductor") must stay ahead of catch-alls
// ("manufactur", "technology"). The ordering is load-bearing.
var industryKeywords = []keywordLabel{
	{"semiconductor", "Semiconductors"},
	{"pcb", "PCB manufacturing"},
	{"connector", "Connectors"},
	{"cable", "Cables & Wires"},
	{"wire", "Cables & Wires"},
	{"electronic component", "Electronic components"},
	{"fiber", "Optical fiber solutions"},
	{"fastener", "Fasteners manufacturing"},
	{"magnet", "Magnetic components"},
	{"cooling", "Cooling solutions"},
	{"motor", "Electric motors"},
	{"automation", "Industrial automation"},
	{"machinery", "Industrial machinery"},
	{"logistic", "Logistics services"},
	{"software", "Software solutions"},
	{"consult", "Business consulting"},
	{"automotive", "Automotive parts"},
	{"plastic", "Plastic manufacturing"},
	{"rubber", "Rubber products"},
	{"display", "Display modules"},
	{"sensor", "Sensors"},
	{"led", "LED lighting"},
	{"manufactur", "Manufacturing (General)"},
	{"supplier of", "Industrial Supply"},
	{"distributor", "Distribution"},
	{"production", "Manufacturing (General)"},
	{"assembly", "Manufacturing (General)"},
	{"technology", "Technology"},
	{"solution", "Technology Solutions"},
}

// Industry returns the label of the first keyword found in text, or ""
// when nothing matches.
func Industry(text string) string {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)
	for _, kl := range industryKeywords {
		if strings.Contains(lower, kl.keyword) {
			return kl.label
		}
	}
	return ""
}
