package messages

// Bundle check messages.
const (
	CheckNameStructure = "Structure"
	CheckNameSettings  = "Settings"
	CheckNameSkills    = "Skills"
	CheckNameHooks     = "Hooks"
	CheckNameCommands  = "Commands"

	CheckComponentPresentFmt   = "%s is present"
	CheckComponentMissingFmt   = "%s is missing"
	CheckComponentMissingHint  = "Every bundle needs settings.json, commands/, skills/ and hooks/ at its root."
	CheckComponentKindFmt      = "%s must be a %s"
	CheckComponentKindHint     = "Replace the entry with the expected kind of node."
	CheckSettingsOK            = "settings.json parses as a JSON object"
	CheckSettingsInvalidFmt    = "settings.json is not valid JSON: %v"
	CheckSettingsNotObject     = "settings.json must contain a JSON object"
	CheckSettingsUnreadableFmt = "failed to read settings.json: %v"
	CheckSettingsHint          = "Fix the JSON syntax; agents refuse to load an invalid settings file."
	CheckSkillsOKFmt           = "%d skill(s) validated"
	CheckSkillMissingFmt       = "skill %s has no SKILL.md"
	CheckSkillMissingHint      = "Each folder under skills/ must contain a SKILL.md manifest."
	CheckSkillParseFailedFmt   = "invalid manifest: %v"
	CheckSkillFindingFmt       = "%s: %s"
	CheckSkillsReadFailedFmt   = "failed to read skills/: %v"
	CheckHooksOKFmt            = "%d hook(s) executable"
	CheckHookNotExecutableFmt  = "hook %s is not executable"
	CheckHookNotExecutableHint = "Run chmod +x on the hook; hooks are invoked directly by name."
	CheckHooksSkippedWindows   = "execute bits are not checked on Windows"
	CheckHooksReadFailedFmt    = "failed to read hooks/: %v"
	CheckCommandsOKFmt         = "%d command(s) found"
	CheckCommandsNone          = "no command files (*.md) under commands/"
	CheckCommandsNoneHint      = "Add at least one markdown command file, or drop commands/ from the bundle."
	CheckCommandsReadFailedFmt = "failed to read commands/: %v"

	CheckStatusOKLabel   = "[OK]  "
	CheckStatusWarnLabel = "[WARN]"
	CheckStatusFailLabel = "[FAIL]"
	CheckResultLineFmt   = "%s %-10s %s\n"
	CheckRecommendPrefix = "       > "
	CheckHeaderFmt       = "Checking bundle at %s\n\n"
	CheckSuccessSummary  = "Bundle looks healthy."
	CheckFailureSummary  = "Bundle has problems; deployments may fail verification."
)
