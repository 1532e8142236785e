// Package health implements the doctor checks: is a transport tool
// installed, can the destination roots be resolved and written to, and is
// git around for the .gitignore step.
package health

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/ariel-frischer/claudekit/internal/fetch"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// RunHealthChecks runs all health checks and returns a report
func RunHealthChecks() *HealthReport {
	report := &HealthReport{
		Checks: make([]CheckResult, 0),
		Passed: true,
	}

	for _, check := range []CheckResult{
		CheckTransport(),
		CheckGit(),
		CheckHomeDir(),
		CheckProjectWritable(),
	} {
		report.Checks = append(report.Checks, check)
		if !check.Passed {
			report.Passed = false
		}
	}

	return report
}

// CheckTransport checks that at least one supported HTTP client tool is
// available, and reports which one an install would use.
func CheckTransport() CheckResult {
	fetcher, err := fetch.Detect("auto")
	if err != nil {
		return CheckResult{
			Name:    "Transport tool",
			Passed:  false,
			Message: "neither curl nor wget found in PATH",
		}
	}

	return CheckResult{
		Name:    "Transport tool",
		Passed:  true,
		Message: fmt.Sprintf("using %s", fetcher.Name()),
	}
}

// CheckGit checks if git is available. Git is optional: without it the
// installer simply skips the .gitignore step.
func CheckGit() CheckResult {
	if _, err := exec.LookPath("git"); err != nil {
		return CheckResult{
			Name:    "Git",
			Passed:  true,
			Message: "git not found (.gitignore step will be skipped)",
		}
	}

	return CheckResult{
		Name:    "Git",
		Passed:  true,
		Message: "git found",
	}
}

// CheckHomeDir checks that the home directory resolves, which global mode
// requires.
func CheckHomeDir() CheckResult {
	home, err := os.UserHomeDir()
	if err != nil {
		return CheckResult{
			Name:    "Home directory",
			Passed:  false,
			Message: fmt.Sprintf("cannot resolve home directory: %v", err),
		}
	}

	return CheckResult{
		Name:    "Home directory",
		Passed:  true,
		Message: home,
	}
}

// CheckProjectWritable checks that the current directory accepts writes,
// which project mode requires.
func CheckProjectWritable() CheckResult {
	cwd, err := os.Getwd()
	if err != nil {
		return CheckResult{
			Name:    "Project directory",
			Passed:  false,
			Message: fmt.Sprintf("cannot resolve working directory: %v", err),
		}
	}

	probe, err := os.CreateTemp(cwd, ".claudekit-probe-*")
	if err != nil {
		return CheckResult{
			Name:    "Project directory",
			Passed:  false,
			Message: fmt.Sprintf("%s is not writable", cwd),
		}
	}
	probe.Close()
	os.Remove(probe.Name())

	return CheckResult{
		Name:    "Project directory",
		Passed:  true,
		Message: fmt.Sprintf("%s is writable", cwd),
	}
}

// FormatReport renders a report for terminal display.
func FormatReport(report *HealthReport) string {
	out := ""
	for _, check := range report.Checks {
		mark := "✓"
		if !check.Passed {
			mark = "✗"
		}
		out += fmt.Sprintf("%s %s: %s\n", mark, check.Name, check.Message)
	}
	if report.Passed {
		out += "\nAll checks passed\n"
	} else {
		out += "\nSome checks failed\n"
	}
	return out
}
