package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/imemasm/asm"
	"github.com/ezrec/imemasm/config"
	"github.com/ezrec/imemasm/imem"
)

func TestRun(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	cfg := config.Default()
	cfg.Input = filepath.Join(dir, "assembly_instructions.txt")
	cfg.Output = filepath.Join(dir, "instructions.txt")
	cfg.Listing = true

	source := "add r1, r2, r3\nldw r4, r5, 0x20\n"
	assert.NoError(os.WriteFile(cfg.Input, []byte(source), 0o644))

	stdout := &bytes.Buffer{}
	err := run(cfg, stdout)
	assert.NoError(err)
	assert.Contains(stdout.String(), "0x22428020")

	data, err := os.ReadFile(cfg.Output)
	assert.NoError(err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Equal(imem.DEPTH, len(lines))
	for n, line := range lines {
		if n%2 == 0 {
			assert.Equal("0x00110c00", line, n)
		} else {
			assert.Equal("0x22428020", line, n)
		}
	}
}

func TestRunErrors(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	cfg := config.Default()
	cfg.Input = filepath.Join(dir, "missing.txt")
	cfg.Output = filepath.Join(dir, "instructions.txt")

	err := run(cfg, &bytes.Buffer{})
	assert.ErrorIs(err, os.ErrNotExist)

	cfg.Input = filepath.Join(dir, "empty.txt")
	assert.NoError(os.WriteFile(cfg.Input, []byte("; nothing\n"), 0o644))
	err = run(cfg, &bytes.Buffer{})
	assert.ErrorIs(err, asm.ErrEmptyProgram)

	cfg.Input = filepath.Join(dir, "bad.txt")
	assert.NoError(os.WriteFile(cfg.Input, []byte("add r1, r2, r3\nxyz r1\n"), 0o644))
	err = run(cfg, &bytes.Buffer{})
	var se *asm.ErrSyntax
	assert.True(errors.As(err, &se))
	assert.Equal(2, se.LineNo)

	_, err = os.Stat(cfg.Output)
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestRunDecimalControlRegisters(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	cfg := config.Default()
	cfg.Input = filepath.Join(dir, "in.s")
	cfg.Output = filepath.Join(dir, "out.txt")
	cfg.DecimalControlRegisters = true

	assert.NoError(os.WriteFile(cfg.Input, []byte("jmp r10, 0\n"), 0o644))
	assert.NoError(run(cfg, &bytes.Buffer{}))

	data, err := os.ReadFile(cfg.Output)
	assert.NoError(err)
	assert.True(strings.HasPrefix(string(data), "0x62050000\n"))
}
