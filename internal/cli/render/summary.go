package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// SummaryRenderer prints the derived parameters as a table
type SummaryRenderer struct {
	out io.Writer
}

// NewSummaryRenderer creates a new summary renderer
func NewSummaryRenderer(out io.Writer) *SummaryRenderer {
	return &SummaryRenderer{out: out}
}

// Render prints the table and the bytecode copy outcome
func (r *SummaryRenderer) Render(result *usecase.GenerateDocsResult) error {
	p := result.Params
	t := newTable()
	t.SetTitle(fmt.Sprintf("%s %s", p.ForkName, p.ContractName))
	t.AppendRows([]table.Row{
		{"Intent", p.Intent},
		{"From", p.FromAddress},
		{"Nonce", strconv.FormatUint(p.FromAddressNonce, 10)},
		{"Deployed address", p.DeployedAddress},
		{"Gas limit", p.GasLimit},
		{"Source hash", p.SourceHash},
		{"Code hash", p.ContractCodeHash},
		{"Data", p.DataBytecodeHead},
		{"Data path", p.DataPath},
	})
	if p.ConstructorSignature != "" {
		t.AppendRow(table.Row{"Constructor", p.ConstructorSignature})
	}
	if p.Proxy != nil {
		t.AppendSeparator()
		t.AppendRows([]table.Row{
			{"Proxy", p.Proxy.ProxyAddress},
			{"Proxy intent", p.Proxy.ProxyIntent},
			{"Proxy source hash", p.Proxy.ProxySourceHash},
			{"Proxy data", p.Proxy.ProxyData},
		})
	}
	fmt.Fprintln(r.out, t.Render())

	if result.BytecodeCopied {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Bytecode copied to %s", p.DataPath)))
	}
	if result.RestoreErr != nil {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Repository was not fully restored: %v", result.RestoreErr)))
	}
	return nil
}

// DependencyRenderer prints the outcome of the dependency check
type DependencyRenderer struct {
	out io.Writer
}

// NewDependencyRenderer creates a new dependency renderer
func NewDependencyRenderer(out io.Writer) *DependencyRenderer {
	return &DependencyRenderer{out: out}
}

func (r *DependencyRenderer) Render(report *usecase.DependencyReport) error {
	t := newTable()
	t.AppendHeader(table.Row{"Tool", "Status", "Version"})
	for _, tool := range report.Tools {
		status := color.New(color.FgGreen).Sprint("ok")
		version := tool.Version
		if tool.Err != nil {
			status = color.New(color.FgRed).Sprint("missing")
			version = tool.Err.Error()
		}
		t.AppendRow(table.Row{tool.Name, status, version})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Format.Header = text.FormatDefault
	t.Style().Title.Align = text.AlignLeft
	return t
}

var (
	_ Renderer[*usecase.GenerateDocsResult] = (*SummaryRenderer)(nil)
	_ Renderer[*usecase.DependencyReport]   = (*DependencyRenderer)(nil)
)
