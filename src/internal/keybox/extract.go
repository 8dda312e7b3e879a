// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package keybox

import (
	"strings"

	"github.com/beevik/etree"
)

// Element and attribute names of the keybox XML dialect.
const (
	elemAttestation = "AndroidAttestation"
	elemKeybox      = "Keybox"
	elemKey         = "Key"
	elemPrivateKey  = "PrivateKey"
	elemPublicKey   = "PublicKey"
	elemChain       = "CertificateChain"
	elemCertificate = "Certificate"
	attrDeviceID    = "DeviceID"
	attrAlgorithm   = "algorithm"
)

// Parse reads raw XML text into a document tree. A malformed document is
// surfaced as an InputFormatError carrying the parser's message; no partial
// recovery is attempted.
func Parse(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &InputFormatError{Err: err}
	}
	return doc, nil
}

// Extract converts a parsed document tree into a typed Keybox. It is a pure
// transform: no side effects, no I/O.
//
// Structural failures:
//   - missing <AndroidAttestation> container: StructuralError("root")
//   - missing <Keybox> container: StructuralError("keybox")
//
// A document with multiple <Key> entries (some ship both an ECDSA and an RSA
// key) yields the first entry; the chain order inside it is preserved
// exactly as supplied.
func Extract(doc *etree.Document) (*Keybox, error) {
	root := doc.SelectElement(elemAttestation)
	if root == nil {
		return nil, &StructuralError{Missing: "root"}
	}

	box := root.SelectElement(elemKeybox)
	if box == nil {
		return nil, &StructuralError{Missing: "keybox"}
	}

	kb := &Keybox{
		DeviceID: strings.TrimSpace(box.SelectAttrValue(attrDeviceID, "")),
	}
	if kb.DeviceID == "" {
		kb.DeviceID = UnknownDeviceID
	}

	key := box.SelectElement(elemKey)
	if key == nil {
		// A keybox without any key entry is structurally present but empty;
		// the aggregation strategies penalize the missing fields.
		return kb, nil
	}

	kb.KeyAlgorithm = strings.ToUpper(strings.TrimSpace(key.SelectAttrValue(attrAlgorithm, "")))
	kb.PrivateKey = elementText(key, elemPrivateKey)
	kb.PublicKey = elementText(key, elemPublicKey)
	kb.CertificateChain = normalizeChain(key.SelectElement(elemChain))

	return kb, nil
}

// FromXML is the convenience composition of Parse and Extract.
func FromXML(data []byte) (*Keybox, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Extract(doc)
}

// normalizeChain materializes the certificate chain as an ordered sequence
// regardless of the underlying shape: absent container, a single
// <Certificate> element, and repeated <Certificate> elements all normalize
// to a []string (length 0 when absent). The source tree uses different
// shapes for one versus many certificates, so this normalization is explicit
// and tested.
func normalizeChain(chain *etree.Element) []string {
	if chain == nil {
		return nil
	}

	elements := chain.SelectElements(elemCertificate)
	pems := make([]string, 0, len(elements))
	for _, el := range elements {
		pems = append(pems, strings.TrimSpace(el.Text()))
	}
	return pems
}

func elementText(parent *etree.Element, name string) string {
	el := parent.SelectElement(name)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}
