package models

// ScaffoldPackageManager is the closed set of package managers a scaffold
// template can be filed under.
type ScaffoldPackageManager string

const (
	ScaffoldNpm      ScaffoldPackageManager = "npm"
	ScaffoldYarn     ScaffoldPackageManager = "yarn"
	ScaffoldPnpm     ScaffoldPackageManager = "pnpm"
	ScaffoldBun      ScaffoldPackageManager = "bun"
	ScaffoldDeno     ScaffoldPackageManager = "deno"
	ScaffoldComposer ScaffoldPackageManager = "composer"
	ScaffoldPip      ScaffoldPackageManager = "pip"
	ScaffoldPoetry   ScaffoldPackageManager = "poetry"
	ScaffoldPipenv   ScaffoldPackageManager = "pipenv"
	ScaffoldCargo    ScaffoldPackageManager = "cargo"
	ScaffoldGradle   ScaffoldPackageManager = "gradle"
	ScaffoldMaven    ScaffoldPackageManager = "maven"
	ScaffoldDotnet   ScaffoldPackageManager = "dotnet"
	ScaffoldMix      ScaffoldPackageManager = "mix"
)

// ScaffoldPackageManagers lists every valid choice in display order.
var ScaffoldPackageManagers = []ScaffoldPackageManager{
	ScaffoldNpm, ScaffoldYarn, ScaffoldPnpm, ScaffoldBun, ScaffoldDeno,
	ScaffoldComposer, ScaffoldPip, ScaffoldPoetry, ScaffoldPipenv,
	ScaffoldCargo, ScaffoldGradle, ScaffoldMaven, ScaffoldDotnet,
	ScaffoldMix,
}

// CoerceScaffoldPackageManager maps an arbitrary string onto a valid
// choice, defaulting to npm.
func CoerceScaffoldPackageManager(raw string) ScaffoldPackageManager {
	for _, pm := range ScaffoldPackageManagers {
		if ScaffoldPackageManager(raw) == pm {
			return pm
		}
	}
	return ScaffoldNpm
}

// ScaffoldLanguage is the closed set of languages a scaffold template
// can be written for.
type ScaffoldLanguage string

const (
	LangTypeScript ScaffoldLanguage = "typescript"
	LangJavaScript ScaffoldLanguage = "javascript"
	LangPython     ScaffoldLanguage = "python"
	LangPHP        ScaffoldLanguage = "php"
	LangRust       ScaffoldLanguage = "rust"
	LangGo         ScaffoldLanguage = "go"
	LangJava       ScaffoldLanguage = "java"
	LangKotlin     ScaffoldLanguage = "kotlin"
	LangRuby       ScaffoldLanguage = "ruby"
	LangElixir     ScaffoldLanguage = "elixir"
	LangCSharp     ScaffoldLanguage = "csharp"
)

// ScaffoldLanguages lists every valid language in display order.
var ScaffoldLanguages = []ScaffoldLanguage{
	LangTypeScript, LangJavaScript, LangPython, LangPHP, LangRust,
	LangGo, LangJava, LangKotlin, LangRuby, LangElixir, LangCSharp,
}

// CoerceScaffoldLanguage maps an arbitrary string onto a valid language,
// defaulting to typescript.
func CoerceScaffoldLanguage(raw string) ScaffoldLanguage {
	for _, lang := range ScaffoldLanguages {
		if ScaffoldLanguage(raw) == lang {
			return lang
		}
	}
	return LangTypeScript
}
