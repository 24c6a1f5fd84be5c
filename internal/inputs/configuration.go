package inputs

import (
	"errors"
	"fmt"

	"github.com/cruciblehq/xcbuild/internal/destination"
	"github.com/cruciblehq/xcbuild/internal/optional"
	"github.com/cruciblehq/xcbuild/internal/options"
	"github.com/cruciblehq/xcbuild/internal/signing"
)

// Input names.
const (
	Workspace            = "workspace"
	Project              = "project"
	Scheme               = "scheme"
	Configuration        = "configuration"
	SDK                  = "sdk"
	Arch                 = "arch"
	Destination          = "destination"
	Clean                = "clean"
	DisableCodeSigning   = "disable-code-signing"
	CodeSignIdentity     = "CODE_SIGN_IDENTITY"
	CodeSigningRequired  = "CODE_SIGNING_REQUIRED"
	CodeSignEntitlements = "CODE_SIGN_ENTITLEMENTS"
	CodeSigningAllowed   = "CODE_SIGNING_ALLOWED"
	DevelopmentTeam      = "development-team"
	ResultBundlePath     = "result-bundle-path"
	ResultBundleName     = "result-bundle-name"
	Executable           = "executable"
	ArtifactStore        = "artifact-store"
	MetricsFile          = "metrics-file"
)

// Build tool used when the executable input is absent.
const DefaultExecutable = "xcodebuild"

// Inputs that control how the build runs, beyond the tool's arguments.
type Tooling struct {
	Executable    string                 // Build tool executable.
	ArtifactStore optional.Value[string] // Artifact store URL.
	MetricsFile   optional.Value[string] // Prometheus textfile path.
}

// Resolves the build configuration from src.
//
// The destination is parsed here, so a malformed destination fails with
// [destination.ErrMalformedDestination] before any build is attempted.
// Supplying both workspace and project is an [ErrInvalidInput]. Signing
// overrides are ignored when signing is disabled. All problems found are
// reported together.
func ResolveConfiguration(src Source) (options.Configuration, error) {
	var errs []error

	boolean := func(name string, get func(Source, string) (optional.Value[bool], error)) optional.Value[bool] {
		v, err := get(src, name)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	cfg := options.Configuration{
		Workspace:     String(src, Workspace),
		Project:       String(src, Project),
		Scheme:        String(src, Scheme),
		Configuration: String(src, Configuration),
		SDK:           String(src, SDK),
		Arch:          String(src, Arch),
		Clean:         boolean(Clean, Bool),
		Signing: signing.Policy{
			Disable: boolean(DisableCodeSigning, Bool).Or(false),
			Team:    String(src, DevelopmentTeam),
		},
		ResultBundlePath: String(src, ResultBundlePath),
		ResultBundleName: String(src, ResultBundleName),
	}

	// Overrides are neither read nor validated when signing is disabled.
	if !cfg.Signing.Disable {
		cfg.Signing.Overrides = signing.Overrides{
			Identity:     String(src, CodeSignIdentity),
			Required:     boolean(CodeSigningRequired, YesNo),
			Entitlements: String(src, CodeSignEntitlements),
			Allowed:      boolean(CodeSigningAllowed, YesNo),
		}
	}

	if raw, ok := String(src, Destination).Get(); ok {
		d, err := destination.Parse(raw)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Destination = optional.Some(d)
		}
	}

	if cfg.Workspace.IsSet() && cfg.Project.IsSet() {
		errs = append(errs, fmt.Errorf("%w: %s and %s are mutually exclusive", ErrInvalidInput, Workspace, Project))
	}

	if err := errors.Join(errs...); err != nil {
		return options.Configuration{}, err
	}
	return cfg, nil
}

// Resolves the tooling inputs from src.
func ResolveTooling(src Source) Tooling {
	return Tooling{
		Executable:    String(src, Executable).Or(DefaultExecutable),
		ArtifactStore: String(src, ArtifactStore),
		MetricsFile:   String(src, MetricsFile),
	}
}
