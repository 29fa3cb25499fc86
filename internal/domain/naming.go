package domain

import (
	"fmt"
	"path"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeploymentIntent returns the intent string of the deployment deposit.
func DeploymentIntent(forkName, contractName string) string {
	return fmt.Sprintf("%s: %s Deployment", forkName, contractName)
}

// ProxyUpdateIntent returns the intent string of the proxy update deposit.
func ProxyUpdateIntent(forkName, contractName string) string {
	return fmt.Sprintf("%s: %s Proxy Update", forkName, contractName)
}

// CamelToKebab converts CrossL2Inbox into cross-l2-inbox.
func CamelToKebab(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune('-')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// DataPath returns where the full creation bytecode is published.
func DataPath(bytecodeDir, forkName, contractName string) string {
	lowerFork := cases.Lower(language.Und).String(forkName)
	file := fmt.Sprintf("%s-%s-deployment.txt", lowerFork, CamelToKebab(contractName))
	return path.Join(bytecodeDir, file)
}

// ForgeArtifactPath returns the artifact path of a contract relative to the repository root.
func ForgeArtifactPath(contractsDir, outDir, contractName string) string {
	return path.Join(contractsDir, outDir, contractName+".sol", contractName+".json")
}

// BytecodeHead abbreviates bytecode to its first 32 hex characters.
func BytecodeHead(bytecode string) string {
	hex := strings.TrimPrefix(bytecode, "0x")
	if len(hex) > 32 {
		hex = hex[:32]
	}
	return "0x" + hex + "..."
}

// FormatArgsWithAlternateNewlines joins args with a line continuation after every second one.
func FormatArgsWithAlternateNewlines(args []string) string {
	var b strings.Builder
	for i, arg := range args {
		b.WriteString(arg)
		if i == len(args)-1 {
			break
		}
		if i%2 == 1 {
			b.WriteString(" \\\n")
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}

// CommandEcho returns the reproduction command embedded in the generated document.
func CommandEcho(prefix string, args []string) string {
	return prefix + " " + FormatArgsWithAlternateNewlines(args)
}
