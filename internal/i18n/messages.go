package i18n

var defaultMessages = `
	[suggest_command_usage]
	other = "Classify staged changes and build a conventional commit message"

	[suggest_command_description]
	other = "Runs the full pipeline over the staging area: classifies every staged file into a workspace, resolves the commit category and renders the commit message plus the per-workspace report"

	[changeset_command_usage]
	other = "Write a changeset fragment per affected workspace"

	[changeset_command_description]
	other = "Same pipeline as suggest, but persists one changeset fragment per affected workspace under the changeset directory"

	[classify_command_usage]
	other = "Show which workspace owns each staged file"

	[classify_command_description]
	other = "Maps every staged path to its owning workspace using the prefix rule table (longest prefix wins) and prints the declared name read from each manifest"

	[config_command_usage]
	other = "Manage matechangeset configuration"

	[config_init_usage]
	other = "Create the configuration file with default values"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_lang_usage]
	other = "Set the output language (en, es)"

	[config_set_collector_usage]
	other = "Set the collector provider (git, gogit)"

	[update_command_usage]
	other = "Check for a newer release"

	[completion_command_usage]
	other = "Generate shell completion scripts"

	[type_flag_usage]
	other = "Commit type keyword (feat, fix, refactor, ...); inferred from the diff when omitted"

	[scope_flag_usage]
	other = "Optional scope for the commit headline"

	[message_flag_usage]
	other = "Commit subject line"

	[body_flag_usage]
	other = "Commit body line; repeat the flag for several bullets"

	[api_change_flag_usage]
	other = "Declare that a public API changed (never guessed from the diff)"

	[lang_flag_usage]
	other = "Output language for this run"

	[no_staged_changes]
	other = "No staged changes to classify.\nUse 'git add' to stage your changes first"

	[analyzing_changes]
	other = "Classifying staged changes..."

	[commit_message_title]
	other = "Suggested commit message"

	[affected_workspaces]
	other = "Affected workspaces"

	[workspace_line]
	other = "{{.Name}} ({{.Root}}) → {{.Bump}}"

	[workspace_error_line]
	other = "{{.Root}} → skipped: {{.Error}}"

	[fragment_written]
	other = "Changeset written: {{.Path}}"

	[readme_recommendation_title]
	other = "README sections to review"

	[readme_missing]
	other = "no README in this workspace"

	[no_readme_sections]
	other = "nothing to review"

	[unmanaged_paths]
	other = "Paths outside any workspace"

	[warnings_title]
	other = "Warnings"

	[invalid_category]
	other = "'{{.Type}}' is not a valid commit type"

	[category_resolved]
	other = "Category: {{.Category}} (breaking: {{.Breaking}})"

	[readme_instr_features]
	other = "Describe the new behavior in the Features section"

	[readme_instr_usage]
	other = "Review the Usage examples so they match the new behavior"

	[readme_instr_configuration]
	other = "Check that documented configuration keys are still accurate"

	[readme_instr_troubleshooting]
	other = "Add or update the Troubleshooting entry this fix relates to"

	[readme_instr_breaking]
	other = "Document the incompatible change and the migration path"

	[readme_instr_scripts]
	other = "Sync the Scripts section with the manifest scripts"

	[readme_instr_env]
	other = "List any new or renamed environment variables"

	[config_saved]
	other = "Configuration saved"

	[current_config]
	other = "Current configuration"

	[language_set]
	other = "Language set to '{{.Lang}}'"

	[collector_set]
	other = "Collector set to '{{.Collector}}'"

	[invalid_collector]
	other = "'{{.Collector}}' is not a registered collector"

	[update_available]
	other = "A new version is available: {{.Version}} (you have {{.Current}})"

	[update_not_available]
	other = "You are on the latest version"

	[update_check_failed]
	other = "Could not check for updates: {{.Error}}"

	[factory_already_registered]
	other = "Command factory '{{.FactoryName}}' is already registered"

	[app_usage]
	other = "Deterministic change classifier and changeset emitter for monorepos"

	[app_description]
	other = "Classifies every staged file into its owning workspace, resolves the conventional commit category, derives the version bump per workspace and renders the commit message, the changeset fragments and the README sections worth reviewing"

	[help_command_usage]
	other = "Show help"

	[classify_title]
	other = "Workspace classification"

	[config_set_lang_flag_usage]
	other = "Language code: en or es"

	[config_set_collector_flag_usage]
	other = "Registered collector name"

	[unsupported_language]
	other = "Unsupported language. Valid values: en, es"

	[completion_bash_usage]
	other = "Print the bash completion script"

	[completion_zsh_usage]
	other = "Print the zsh completion script"

	[completion_install_usage]
	other = "Install completion into your shell config"

	[completion_error_home_dir]
	other = "Could not resolve the home directory: {{.Error}}"

	[completion_error_unsupported_shell]
	other = "Unsupported shell: {{.Shell}}"

	[completion_already_installed]
	other = "Completion is already installed in {{.File}}"

	[completion_restart_shell]
	other = "Restart your shell or run:"

	[completion_error_open_config]
	other = "Could not open the shell config: {{.Error}}"

	[completion_error_write_config]
	other = "Could not write the shell config: {{.Error}}"

	[completion_installed_success]
	other = "Completion installed in {{.File}}"
`
