package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/alnah/go-fontbundle/internal/fileutil"
)

// remoteProbeTimeout bounds the reachability check; bundling itself has no
// timeout unless configured.
const remoteProbeTimeout = 10 * time.Second

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status     string         `json:"status"` // "ready", "warnings", "errors"
	Stylesheet stylesheetInfo `json:"stylesheet"`
	Cache      cacheInfo      `json:"cache"`
	Remote     remoteInfo     `json:"remote"`
	Warnings   []string       `json:"warnings,omitempty"`
	Errors     []string       `json:"errors,omitempty"`
}

// stylesheetInfo holds input stylesheet detection results.
type stylesheetInfo struct {
	Found bool   `json:"found"`
	Path  string `json:"path"`
	Size  int64  `json:"size,omitempty"`
}

// cacheInfo holds font cache directory results.
type cacheInfo struct {
	Dir      string `json:"dir"`
	Exists   bool   `json:"exists"`
	Writable bool   `json:"writable"`
	Files    int    `json:"files"`
}

// remoteInfo holds remote source reachability results.
type remoteInfo struct {
	BaseURL   string `json:"base_url"`
	Reachable bool   `json:"reachable"`
	Status    string `json:"status,omitempty"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(env *Environment) *doctorResult {
	result := &doctorResult{Status: "ready"}

	checkStylesheet(result, env)
	checkCache(result, env)
	checkRemote(result, env)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkStylesheet verifies the input stylesheet exists.
func checkStylesheet(result *doctorResult, env *Environment) {
	path := env.Config.Input.File
	result.Stylesheet.Path = path

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Input stylesheet not found: %s", path))
		return
	}

	result.Stylesheet.Found = true
	result.Stylesheet.Size = info.Size()
}

// checkCache inspects the font cache directory.
func checkCache(result *doctorResult, env *Environment) {
	dir := env.Config.Cache.Dir
	result.Cache.Dir = dir

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		// Not an error: the fetcher creates it lazily on first download.
		return
	}
	result.Cache.Exists = true

	result.Cache.Writable = fileutil.DirWritable(dir)
	if !result.Cache.Writable {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Cache directory not writable: %s (downloads will fail, cached fonts still work)", dir))
	}

	_ = fs.WalkDir(os.DirFS(dir), ".", func(path string, d fs.DirEntry, err error) error {
		if err == nil && d != nil && !d.IsDir() {
			result.Cache.Files++
		}
		return nil
	})
}

// checkRemote probes the remote base URL. Any HTTP response counts as
// reachable; only transport failures warn, since a fully warmed cache
// bundles without the network.
func checkRemote(result *doctorResult, env *Environment) {
	baseURL := env.Config.Remote.BaseURL
	result.Remote.BaseURL = baseURL

	client := &http.Client{Timeout: remoteProbeTimeout}
	req, err := http.NewRequest(http.MethodGet, baseURL, nil)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Invalid remote base URL: %v", err))
		return
	}
	req.Header.Set("User-Agent", env.Config.Remote.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Remote not reachable: %v (cached fonts still work)", err))
		return
	}
	defer resp.Body.Close()

	result.Remote.Reachable = true
	result.Remote.Status = resp.Status
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "fontbundle doctor")
	fmt.Fprintln(w)

	// Stylesheet section
	fmt.Fprintln(w, "Stylesheet")
	if r.Stylesheet.Found {
		fmt.Fprintf(w, "  [OK] Found %s (%d bytes)\n", r.Stylesheet.Path, r.Stylesheet.Size)
	} else {
		fmt.Fprintf(w, "  [ERROR] Not found: %s\n", r.Stylesheet.Path)
	}
	fmt.Fprintln(w)

	// Cache section
	fmt.Fprintln(w, "Font cache")
	if r.Cache.Exists {
		fmt.Fprintf(w, "  [OK] Directory: %s (%d file(s))\n", r.Cache.Dir, r.Cache.Files)
		if r.Cache.Writable {
			fmt.Fprintln(w, "  [OK] Writable")
		} else {
			fmt.Fprintln(w, "  [WARN] Not writable")
		}
	} else {
		fmt.Fprintf(w, "  [OK] Directory %s absent; created on first download\n", r.Cache.Dir)
	}
	fmt.Fprintln(w)

	// Remote section
	fmt.Fprintln(w, "Remote source")
	if r.Remote.Reachable {
		fmt.Fprintf(w, "  [OK] %s (%s)\n", r.Remote.BaseURL, r.Remote.Status)
	} else {
		fmt.Fprintf(w, "  [WARN] Unreachable: %s\n", r.Remote.BaseURL)
	}
	fmt.Fprintln(w)

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to bundle")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
