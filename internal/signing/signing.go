package signing

import "github.com/cruciblehq/xcbuild/internal/optional"

// Build setting names controlled by the policy.
const (
	SettingIdentity        = "CODE_SIGN_IDENTITY"
	SettingRequired        = "CODE_SIGNING_REQUIRED"
	SettingEntitlements    = "CODE_SIGN_ENTITLEMENTS"
	SettingAllowed         = "CODE_SIGNING_ALLOWED"
	SettingDevelopmentTeam = "DEVELOPMENT_TEAM"
)

// Tokens emitted when signing is disabled, in order.
var disabledSettings = []string{
	SettingIdentity + `=""`,
	SettingRequired + `="NO"`,
	SettingEntitlements + `=""`,
	SettingAllowed + `="NO"`,
}

// Explicit per-setting overrides. Absent fields emit nothing.
type Overrides struct {
	Identity     optional.Value[string] // CODE_SIGN_IDENTITY, verbatim.
	Required     optional.Value[bool]   // CODE_SIGNING_REQUIRED, as YES or NO.
	Entitlements optional.Value[string] // CODE_SIGN_ENTITLEMENTS, verbatim.
	Allowed      optional.Value[bool]   // CODE_SIGNING_ALLOWED, as YES or NO.
}

// Code-signing policy for a single build.
type Policy struct {
	Disable   bool                   // Suppresses signing; Overrides are ignored.
	Overrides Overrides              // Applied only when Disable is false.
	Team      optional.Value[string] // DEVELOPMENT_TEAM, appended last.
}

// Resolves a policy into ordered KEY=VALUE build settings.
//
// When signing is disabled exactly four fixed settings are returned and
// the overrides are not read. Otherwise each present override is emitted in
// the order identity, required, entitlements, allowed. A present team is
// always appended last.
func Resolve(p Policy) []string {
	var settings []string

	if p.Disable {
		settings = append(settings, disabledSettings...)
	} else {
		settings = p.Overrides.settings()
	}

	if team, ok := p.Team.Get(); ok {
		settings = append(settings, SettingDevelopmentTeam+"="+team)
	}

	return settings
}

// Returns the settings for the present overrides, in fixed order.
func (o Overrides) settings() []string {
	var settings []string
	if v, ok := o.Identity.Get(); ok {
		settings = append(settings, SettingIdentity+"="+v)
	}
	if v, ok := o.Required.Get(); ok {
		settings = append(settings, SettingRequired+"="+yesNo(v))
	}
	if v, ok := o.Entitlements.Get(); ok {
		settings = append(settings, SettingEntitlements+"="+v)
	}
	if v, ok := o.Allowed.Get(); ok {
		settings = append(settings, SettingAllowed+"="+yesNo(v))
	}
	return settings
}

// Maps a boolean to the build tool's YES/NO token.
func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}
