package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	testRepoPath     = "/work/optimism"
	testCommit       = "0123abcd"
	testBranch       = "develop"
	testFrom         = "0x4220000000000000000000000000000000000003"
	testProxy        = "0x4200000000000000000000000000000000000022"
	testCreationCode = "0x608060405234801561001057600080fd5b506101"
	testDeployedCode = "0x6080604052348015600f57600080fd5b50"
)

// fakeRepo tracks the checked out ref and records every mutating call
type fakeRepo struct {
	current      string
	dirty        bool
	notGit       bool
	commitExists bool
	stashes      []string
	calls        []string

	checkoutErr map[string]error
	stashErr    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{current: testBranch, commitExists: true}
}

func (r *fakeRepo) Path() string { return testRepoPath }

func (r *fakeRepo) Check(context.Context) (bool, error) { return !r.notGit, nil }

func (r *fakeRepo) CommitExists(_ context.Context, commit string) (bool, error) {
	return r.commitExists, nil
}

func (r *fakeRepo) CurrentRef(context.Context) (string, error) { return r.current, nil }

func (r *fakeRepo) HasChanges(context.Context) (bool, error) { return r.dirty, nil }

func (r *fakeRepo) Stash(_ context.Context, label string) error {
	r.calls = append(r.calls, "stash")
	if r.stashErr != nil {
		return r.stashErr
	}
	r.stashes = append([]string{label}, r.stashes...)
	r.dirty = false
	return nil
}

func (r *fakeRepo) FindStash(_ context.Context, label string) (string, error) {
	for i, s := range r.stashes {
		if s == label {
			return fmt.Sprintf("stash@{%d}", i), nil
		}
	}
	return "", nil
}

func (r *fakeRepo) PopStash(_ context.Context, ref string) error {
	r.calls = append(r.calls, "pop "+ref)
	r.stashes = r.stashes[1:]
	r.dirty = true
	return nil
}

func (r *fakeRepo) Checkout(_ context.Context, ref string) error {
	r.calls = append(r.calls, "checkout "+ref)
	if err := r.checkoutErr[ref]; err != nil {
		return err
	}
	r.current = ref
	return nil
}

func (r *fakeRepo) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

type fakeConfirmer struct {
	approve bool
	asked   int
}

func (c *fakeConfirmer) ConfirmStash(context.Context, string) (bool, error) {
	c.asked++
	return c.approve, nil
}

type fakeBuilder struct {
	err    error
	builds int

	// ref is the ref checked out when Build ran
	repo *fakeRepo
	ref  string
}

func (b *fakeBuilder) Build(context.Context) error {
	b.builds++
	if b.repo != nil {
		b.ref = b.repo.current
	}
	return b.err
}

type fakeArtifacts struct {
	locateErr error
}

func (a *fakeArtifacts) ArtifactPath(contractName string) string {
	return domain.ForgeArtifactPath("packages/contracts-bedrock", "forge-artifacts", contractName)
}

func (a *fakeArtifacts) Locate(context.Context, string) error { return a.locateErr }

// fakeQuery answers jq lookups by field
type fakeQuery struct {
	values map[string]string
	err    error
}

func newFakeQuery() *fakeQuery {
	return &fakeQuery{values: map[string]string{
		CreationBytecodeField: testCreationCode,
		DeployedBytecodeField: testDeployedCode,
	}}
}

func (q *fakeQuery) Field(_ context.Context, _ string, field string) (string, error) {
	if q.err != nil {
		return "", q.err
	}
	return q.values[field], nil
}

type fakeInspector struct {
	signature string
}

func (i *fakeInspector) ConstructorSignature(context.Context, string) (string, error) {
	return i.signature, nil
}

// fakeCast mirrors what cast prints, computed with go-ethereum
type fakeCast struct {
	address     string
	gas         string
	estimateErr error
	estimates   []estimateCall
}

type estimateCall struct {
	rpcURL, bytecode, sig string
	args                  []string
}

func (c *fakeCast) ComputeAddress(_ context.Context, from string, nonce uint64) (string, error) {
	if c.address != "" {
		return c.address, nil
	}
	return crypto.CreateAddress(common.HexToAddress(from), nonce).Hex(), nil
}

func (c *fakeCast) Keccak(_ context.Context, data string) (string, error) {
	if strings.HasPrefix(data, "0x") {
		b, err := hexutil.Decode(data)
		if err != nil {
			return "", err
		}
		return crypto.Keccak256Hash(b).Hex(), nil
	}
	return crypto.Keccak256Hash([]byte(data)).Hex(), nil
}

func (c *fakeCast) ConcatHex(_ context.Context, parts ...string) (string, error) {
	var b strings.Builder
	b.WriteString("0x")
	for _, p := range parts {
		b.WriteString(strings.TrimPrefix(p, "0x"))
	}
	return b.String(), nil
}

func (c *fakeCast) Sig(_ context.Context, signature string) (string, error) {
	return hexutil.Encode(crypto.Keccak256([]byte(signature))[:4]), nil
}

func (c *fakeCast) ABIEncode(_ context.Context, _ string, args ...string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("expected one address")
	}
	return hexutil.Encode(common.LeftPadBytes(common.HexToAddress(args[0]).Bytes(), 32)), nil
}

func (c *fakeCast) EstimateCreate(_ context.Context, rpcURL, bytecode, constructorSig string, args []string) (string, error) {
	c.estimates = append(c.estimates, estimateCall{rpcURL: rpcURL, bytecode: bytecode, sig: constructorSig, args: args})
	if c.estimateErr != nil {
		return "", c.estimateErr
	}
	if c.gas == "" {
		return "420000", nil
	}
	return c.gas, nil
}

type fakeNonces struct {
	nonce uint64
	err   error
	reads int
}

func (n *fakeNonces) PendingNonce(context.Context, string, string) (uint64, error) {
	n.reads++
	return n.nonce, n.err
}

type fakeVerifier struct{}

func (fakeVerifier) CreateAddress(from string, nonce uint64) (string, error) {
	return crypto.CreateAddress(common.HexToAddress(from), nonce).Hex(), nil
}

func (fakeVerifier) SourceHash(prefix, intent string) (string, error) {
	return expectedSourceHash(prefix, intent), nil
}

func expectedSourceHash(prefix, intent string) string {
	return crypto.Keccak256Hash(common.FromHex(prefix), crypto.Keccak256([]byte(intent))).Hex()
}

type fakePublisher struct {
	published []*domain.DerivedParameters
	err       error
}

func (p *fakePublisher) Publish(_ context.Context, params *domain.DerivedParameters) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, params)
	return nil
}

type fakeWriter struct {
	bytecodePath string
	bytecode     string
	paramsPath   string
	params       *domain.DerivedParameters
}

func (w *fakeWriter) WriteBytecode(_ context.Context, path string, bytecode string) error {
	w.bytecodePath, w.bytecode = path, bytecode
	return nil
}

func (w *fakeWriter) WriteParams(_ context.Context, path string, params *domain.DerivedParameters) error {
	w.paramsPath, w.params = path, params
	return nil
}

// fakeToolChecker fails for the tools listed in missing
type fakeToolChecker struct {
	missing map[string]bool
	probed  []string
}

func (c *fakeToolChecker) Version(_ context.Context, tool string) (string, error) {
	c.probed = append(c.probed, tool)
	if c.missing[tool] {
		return "", &domain.CommandError{Command: tool + " --version", Err: errors.New("executable file not found in $PATH")}
	}
	return tool + " version 1.0.0", nil
}

type recordingSink struct {
	events []ProgressEvent
	errors []string
}

func (s *recordingSink) OnProgress(_ context.Context, event ProgressEvent) {
	s.events = append(s.events, event)
}

func (s *recordingSink) Error(message string) {
	s.errors = append(s.errors, message)
}
