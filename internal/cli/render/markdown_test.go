package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crossL2InboxParams() *domain.DerivedParameters {
	return &domain.DerivedParameters{
		ForkName:              "Isthmus",
		ContractName:          "CrossL2Inbox",
		Intent:                "Isthmus: CrossL2Inbox Deployment",
		FromAddress:           "0x4220000000000000000000000000000000000000",
		FromAddressNonce:      0,
		GasLimit:              "420000",
		DataBytecodeHead:      "0x60806040523480156100105760008...",
		DataPath:              "../specs/static/bytecode/isthmus-cross-l2-inbox-deployment.txt",
		GitCommitHash:         "5e14a61547a45eef2ebeba677aee4a049f106ed8",
		ContractCodeHash:      "0x0b6a5dd4c7c2f40b19e8c0a3bb5c9f4b1d1ae3c3a1b8e3f0d7b55fbb1f0f8a2b",
		SourceHash:            "0xe556bf6b682b207441a064b33fb2f7a211d50bc498c80cc93d8094358e8ddab7",
		DeployedAddress:       "0x691300f512e48B463C2617b34Eef1A9f82EE7dBf",
		Command:               "./scripts/run_gen_predeploy_docs.sh --optimism-repo-path=../optimism --fork-name=Isthmus \\\n--contract-name=CrossL2Inbox",
		ForgeArtifactPathData: "packages/contracts-bedrock/forge-artifacts/CrossL2Inbox.sol/CrossL2Inbox.json",
	}
}

func withProxy(p *domain.DerivedParameters) *domain.DerivedParameters {
	clone := *p
	clone.Proxy = &domain.ProxyUpdate{
		ProxyAddress:    "0x4200000000000000000000000000000000000022",
		ProxyIntent:     "Isthmus: CrossL2Inbox Proxy Update",
		ProxySourceHash: "0xf512447b122a2fff584a78a1b4a1fed799e2a69758604b2137bbfecaf4292ee5",
		ProxyData:       "0x3659cfe6000000000000000000000000691300f512e48b463c2617b34eef1a9f82ee7dbf",
	}
	return &clone
}

func readGolden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestMarkdownRendererGolden(t *testing.T) {
	r := NewMarkdownRenderer(nil, nil)

	tests := []struct {
		name   string
		params *domain.DerivedParameters
		golden string
	}{
		{name: "deployment only", params: crossL2InboxParams(), golden: "deployment.golden.md"},
		{name: "with proxy update", params: withProxy(crossL2InboxParams()), golden: "deployment_proxy.golden.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.params)
			require.NoError(t, err)
			assert.Equal(t, readGolden(t, tt.golden), got)
		})
	}
}

func TestMarkdownRendererProxySectionIsSuffix(t *testing.T) {
	r := NewMarkdownRenderer(nil, nil)

	base, err := r.Render(crossL2InboxParams())
	require.NoError(t, err)
	full, err := r.Render(withProxy(crossL2InboxParams()))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(full, base))
	assert.NotContains(t, base, "Proxy Update")
	assert.Contains(t, full[len(base):], "### CrossL2Inbox Proxy Update")
	assert.Contains(t, full[len(base):], "`gasLimit`: `50,000`")
	assert.True(t, strings.HasSuffix(base, "```\n\n"))
}

func TestMarkdownRendererPublish(t *testing.T) {
	var out, banners bytes.Buffer
	r := NewMarkdownRenderer(&out, &banners)

	require.NoError(t, r.Publish(context.Background(), crossL2InboxParams()))
	assert.Equal(t, readGolden(t, "deployment.golden.md"), out.String())
	assert.Contains(t, banners.String(), "-- Rendered Template --")
	assert.Contains(t, banners.String(), "--- End Rendered Template ---")
}
