// SPDX-License-Identifier: MPL-2.0

package i18n

// Key identifies a catalog message.
type Key string

const (
	Usage          Key = "usage"
	Aliases        Key = "aliases"
	Examples       Key = "examples"
	AvailableCmds  Key = "available_commands"
	Flags          Key = "flags"
	GlobalFlags    Key = "global_flags"
	MoreHelp       Key = "more_help"
	HelpFlag       Key = "help_flag"
	ShortRoot      Key = "short_root"
	ShortValidate  Key = "short_validate"
	ShortPlan      Key = "short_plan"
	ShortInit      Key = "short_init"
	ShortConfig    Key = "short_config"
	ShortConfigShw Key = "short_config_show"

	RunBegin      Key = "run_begin"
	RunDryRun     Key = "run_dry_run"
	StepSuccess   Key = "step_success"
	StepSkipped   Key = "step_skipped"
	StepFailed    Key = "step_failed"
	StepOptional  Key = "step_optional"
	RunSummary    Key = "run_summary"
	RunSucceeded  Key = "run_succeeded"
	RunFailed     Key = "run_failed"
	RunHalted     Key = "run_halted"
	ConfirmApply  Key = "confirm_apply"
	ChooseSteps   Key = "choose_steps"
	AnswerYes     Key = "answer_yes"
	AnswerNo      Key = "answer_no"
	Aborted       Key = "aborted"
	GumFallback   Key = "gum_fallback"
	SpecValid     Key = "spec_valid"
	InitWritten   Key = "init_written"
	InitExists    Key = "init_exists"
	MissingSpec   Key = "missing_spec"
	TooManyArgs   Key = "too_many_args"
	WatchStarted  Key = "watch_started"
	WatchRerun    Key = "watch_rerun"
	ExportWritten Key = "export_written"
	ErrorLabel    Key = "error_label"
	ConfigFile    Key = "config_file"
	ConfigDefault Key = "config_default"

	FlagDryRun    Key = "flag_dry_run"
	FlagContinue  Key = "flag_continue_on_error"
	FlagPresenter Key = "flag_presenter"
	FlagSelect    Key = "flag_select"
	FlagYes       Key = "flag_yes"
	FlagWorkdir   Key = "flag_workdir"
	FlagExport    Key = "flag_export"
	FlagWatch     Key = "flag_watch"
	FlagWatchGlob Key = "flag_watch_glob"
	FlagWatchSkip Key = "flag_watch_ignore"
	FlagConfig    Key = "flag_config"
	FlagVerbose   Key = "flag_verbose"
	FlagLocale    Key = "flag_locale"
	FlagForce     Key = "flag_force"
)

var portuguese = map[Key]string{
	Usage:          "Uso:",
	Aliases:        "Apelidos:",
	Examples:       "Exemplos:",
	AvailableCmds:  "Comandos disponíveis:",
	Flags:          "Opções:",
	GlobalFlags:    "Opções globais:",
	MoreHelp:       "Use \"%s [comando] --help\" para mais informações sobre um comando.",
	HelpFlag:       "ajuda para %s",
	ShortRoot:      "Configura ambientes de desenvolvimento a partir de uma especificação declarativa",
	ShortValidate:  "Valida um arquivo de especificação sem aplicá-lo",
	ShortPlan:      "Mostra os passos que seriam aplicados (simulação)",
	ShortInit:      "Cria um envspec.cue de exemplo",
	ShortConfig:    "Gerencia a configuração do envspec",
	ShortConfigShw: "Mostra a configuração efetiva",

	RunBegin:      "Aplicando %s (%d passos)",
	RunDryRun:     "simulação: nada será alterado",
	StepSuccess:   "ok",
	StepSkipped:   "ignorado",
	StepFailed:    "falhou",
	StepOptional:  "opcional",
	RunSummary:    "%d ok, %d ignorados, %d falharam",
	RunSucceeded:  "Ambiente pronto",
	RunFailed:     "A execução falhou",
	RunHalted:     "Execução interrompida no passo %d",
	ConfirmApply:  "Aplicar %d passos de %s?",
	ChooseSteps:   "Selecione os passos a aplicar",
	AnswerYes:     "Sim",
	AnswerNo:      "Não",
	Aborted:       "Cancelado pelo usuário",
	GumFallback:   "gum não encontrado; usando saída simples",
	SpecValid:     "%s é válido (%d passos)",
	InitWritten:   "Criado %s",
	InitExists:    "%s já existe",
	MissingSpec:   "nenhum arquivo de especificação informado",
	TooManyArgs:   "esperado um arquivo de especificação, recebidos %d argumentos",
	WatchStarted:  "Observando alterações (Ctrl+C para sair)",
	WatchRerun:    "Alterações detectadas, reaplicando",
	ExportWritten: "Variáveis exportadas para %s",
	ErrorLabel:    "Erro:",
	ConfigFile:    "Arquivo de configuração: %s",
	ConfigDefault: "Nenhum arquivo de configuração; usando os padrões",

	FlagDryRun:    "mostra o que seria feito sem alterar nada",
	FlagContinue:  "continua após falhas de passos obrigatórios",
	FlagPresenter: "apresentação: auto, plain, gum ou tui",
	FlagSelect:    "escolhe interativamente quais passos aplicar",
	FlagYes:       "não pede confirmação antes de aplicar",
	FlagWorkdir:   "diretório base para caminhos relativos",
	FlagExport:    "grava as variáveis finais como linhas export neste arquivo",
	FlagWatch:     "reaplica quando a especificação ou seus arquivos .env mudam",
	FlagWatchGlob: "com --watch, observa também arquivos que casam com este glob (relativo ao diretório de trabalho)",
	FlagWatchSkip: "com --watch, ignora arquivos que casam com este glob",
	FlagConfig:    "arquivo de configuração (padrão $XDG_CONFIG_HOME/envspec/config.cue)",
	FlagVerbose:   "mostra detalhes e a cadeia de erros",
	FlagLocale:    "idioma das mensagens (pt ou en)",
	FlagForce:     "sobrescreve o arquivo se ele existir",
}

var english = map[Key]string{
	Usage:          "Usage:",
	Aliases:        "Aliases:",
	Examples:       "Examples:",
	AvailableCmds:  "Available Commands:",
	Flags:          "Flags:",
	GlobalFlags:    "Global Flags:",
	MoreHelp:       "Use \"%s [command] --help\" for more information about a command.",
	HelpFlag:       "help for %s",
	ShortRoot:      "Set up development environments from a declarative spec",
	ShortValidate:  "Validate a spec file without applying it",
	ShortPlan:      "Show the steps that would be applied (dry run)",
	ShortInit:      "Create an example envspec.cue",
	ShortConfig:    "Manage envspec configuration",
	ShortConfigShw: "Show the effective configuration",

	RunBegin:      "Applying %s (%d steps)",
	RunDryRun:     "dry run: nothing will be changed",
	StepSuccess:   "ok",
	StepSkipped:   "skipped",
	StepFailed:    "failed",
	StepOptional:  "optional",
	RunSummary:    "%d ok, %d skipped, %d failed",
	RunSucceeded:  "Environment ready",
	RunFailed:     "Run failed",
	RunHalted:     "Run halted at step %d",
	ConfirmApply:  "Apply %d steps from %s?",
	ChooseSteps:   "Select the steps to apply",
	AnswerYes:     "Yes",
	AnswerNo:      "No",
	Aborted:       "Cancelled by user",
	GumFallback:   "gum not found; using plain output",
	SpecValid:     "%s is valid (%d steps)",
	InitWritten:   "Created %s",
	InitExists:    "%s already exists",
	MissingSpec:   "no spec file given",
	TooManyArgs:   "expected one spec file, got %d arguments",
	WatchStarted:  "Watching for changes (Ctrl+C to quit)",
	WatchRerun:    "Changes detected, re-applying",
	ExportWritten: "Exported variables to %s",
	ErrorLabel:    "Error:",
	ConfigFile:    "Config file: %s",
	ConfigDefault: "No config file; using defaults",

	FlagDryRun:    "show what would be done without changing anything",
	FlagContinue:  "keep going after required steps fail",
	FlagPresenter: "presenter: auto, plain, gum or tui",
	FlagSelect:    "interactively choose which steps to apply",
	FlagYes:       "do not ask for confirmation before applying",
	FlagWorkdir:   "base directory for relative paths",
	FlagExport:    "write the final variables as export lines to this file",
	FlagWatch:     "re-apply when the spec or its .env files change",
	FlagWatchGlob: "with --watch, also re-apply when files matching this glob (relative to the work dir) change",
	FlagWatchSkip: "with --watch, ignore files matching this glob",
	FlagConfig:    "config file (default $XDG_CONFIG_HOME/envspec/config.cue)",
	FlagVerbose:   "show details and the error chain",
	FlagLocale:    "message language (pt or en)",
	FlagForce:     "overwrite the file if it exists",
}
