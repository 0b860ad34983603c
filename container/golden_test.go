package container

import (
	"encoding/hex"
	"testing"

	"github.com/rogpeppe/go-internal/txtar"
)

// TestColumnGoldenFixture builds a txtar archive in memory holding a
// saved column's hex dump, then reloads it to confirm the on-disk
// layout round-trips through a plain text artifact rather than a
// binary blob checked into testdata.
func TestColumnGoldenFixture(t *testing.T) {
	a := NewChunkArray[uint32]("n", 4)
	a.SetNbChunks(2)
	for i := uint32(0); i < 5; i++ {
		a.Set(i, i*10)
	}
	var buf fakeBuffer
	if err := a.Save(&buf, 5); err != nil {
		t.Fatal(err)
	}

	arc := &txtar.Archive{
		Files: []txtar.File{
			{Name: "column.hex", Data: []byte(hex.EncodeToString(buf.data) + "\n")},
		},
	}

	raw := txtar.Format(arc)
	parsed := txtar.Parse(raw)
	if len(parsed.Files) != 1 {
		t.Fatalf("expected 1 file in fixture, got %d", len(parsed.Files))
	}

	hexDump := string(parsed.Files[0].Data[:len(parsed.Files[0].Data)-1])
	decoded, err := hex.DecodeString(hexDump)
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	b := NewChunkArray[uint32]("n", 4)
	if err := b.Load(&fakeBuffer{data: decoded}); err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	for i := uint32(0); i < 5; i++ {
		if got, want := b.Get(i), i*10; got != want {
			t.Fatalf("slot %d: got %d want %d", i, got, want)
		}
	}
}
