package container

import (
	"bytes"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/mod/semver"

	"ngonmap/cmerr"
)

// compatibleVersion accepts any persisted format whose major version
// matches the writer's, via golang.org/x/mod/semver, so a future minor
// bump to the header layout doesn't break old readers gratuitously.
func compatibleVersion(v string) bool {
	if !semver.IsValid(v) {
		return false
	}
	return semver.Major(v) == semver.Major(formatVersion)
}

// SaveWithDigest writes the container followed by a blake2b-256 digest
// of the serialized payload, so LoadWithDigest can detect silent
// corruption that a short read alone wouldn't catch.
func (c *ChunkArrayContainer) SaveWithDigest(w io.Writer) error {
	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		return err
	}
	sum := blake2b.Sum256(buf.Bytes())
	if _, err := w.Write(buf.Bytes()); err != nil {
		return cmerr.Wrap(cmerr.IoTruncated, "Container.SaveWithDigest", err)
	}
	if err := binary.Write(w, binary.LittleEndian, sum); err != nil {
		return cmerr.Wrap(cmerr.IoTruncated, "Container.SaveWithDigest", err)
	}
	return nil
}

// LoadWithDigest reads a payload written by SaveWithDigest, verifying
// the trailing digest before touching the container at all: a mismatch
// surfaces as IoTruncated without any partial load.
func (c *ChunkArrayContainer) LoadWithDigest(r io.Reader) error {
	payload, err := io.ReadAll(r)
	if err != nil {
		return cmerr.Wrap(cmerr.IoTruncated, "Container.LoadWithDigest", err)
	}
	if len(payload) < blake2b.Size256 {
		return cmerr.New(cmerr.IoTruncated, "Container.LoadWithDigest", "")
	}
	body := payload[:len(payload)-blake2b.Size256]
	wantSum := payload[len(payload)-blake2b.Size256:]
	gotSum := blake2b.Sum256(body)
	if !bytes.Equal(gotSum[:], wantSum) {
		return cmerr.New(cmerr.IoTruncated, "Container.LoadWithDigest", "digest mismatch")
	}
	return c.Load(bytes.NewReader(body))
}
