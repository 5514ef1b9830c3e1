// Package catalog serves the fixed set of Black-Cross product feature
// areas. Every module answers with the same canned collection shape and a
// stub health report; the names are routing labels with no backing logic.
package catalog

// Names lists the feature areas the mock backend serves, in the order the
// frontend displays them.
var Names = []string{
	"threat-intelligence",
	"incident-response",
	"vulnerability-management",
	"ioc-management",
	"threat-actors",
	"threat-feeds",
	"siem",
	"threat-hunting",
	"risk-assessment",
	"collaboration",
	"reporting",
	"malware-analysis",
	"dark-web",
	"compliance",
	"automation",
}

const (
	statusOperational = "operational"
	moduleVersion     = "1.0.0"
)
