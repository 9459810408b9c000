package mldsa

import (
	"bytes"
	"compress/gzip"
	"encoding/hex"
	"encoding/json"
	"os"
	"testing"
)

// hexBytes is a helper type for JSON unmarshaling of hex strings.
type hexBytes []byte

func (h *hexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	*h = b
	return nil
}

func readGzip(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var paramsByName = map[string]*Params{
	"ML-DSA-44": MLDSA44,
	"ML-DSA-65": MLDSA65,
	"ML-DSA-87": MLDSA87,
}

func TestACVPKeyGen(t *testing.T) {
	promptData, err := readGzip("testdata/ML-DSA-keyGen-FIPS204/prompt.json.gz")
	if err != nil {
		t.Skipf("Could not read test data: %v", err)
	}
	resultsData, err := readGzip("testdata/ML-DSA-keyGen-FIPS204/expectedResults.json.gz")
	if err != nil {
		t.Skipf("Could not read test data: %v", err)
	}

	var prompt struct {
		TestGroups []struct {
			TgID         int    `json:"tgId"`
			ParameterSet string `json:"parameterSet"`
			Tests        []struct {
				TcID int      `json:"tcId"`
				Seed hexBytes `json:"seed"`
			} `json:"tests"`
		} `json:"testGroups"`
	}
	if err := json.Unmarshal(promptData, &prompt); err != nil {
		t.Fatal(err)
	}

	var results struct {
		TestGroups []struct {
			TgID  int `json:"tgId"`
			Tests []struct {
				TcID int      `json:"tcId"`
				Pk   hexBytes `json:"pk"`
				Sk   hexBytes `json:"sk"`
			} `json:"tests"`
		} `json:"testGroups"`
	}
	if err := json.Unmarshal(resultsData, &results); err != nil {
		t.Fatal(err)
	}

	type resultKey struct{ tgID, tcID int }
	resultMap := make(map[resultKey]struct{ pk, sk hexBytes })
	for _, group := range results.TestGroups {
		for _, test := range group.Tests {
			resultMap[resultKey{group.TgID, test.TcID}] = struct{ pk, sk hexBytes }{test.Pk, test.Sk}
		}
	}

	for _, group := range prompt.TestGroups {
		p, ok := paramsByName[group.ParameterSet]
		if !ok {
			continue
		}
		t.Run(group.ParameterSet, func(t *testing.T) {
			for _, test := range group.Tests {
				result, ok := resultMap[resultKey{group.TgID, test.TcID}]
				if !ok {
					t.Fatalf("Missing result for tgId=%d, tcId=%d", group.TgID, test.TcID)
				}

				sk, err := NewPrivateKeyFromSeed(p, test.Seed)
				if err != nil {
					t.Fatalf("tcId=%d: NewPrivateKeyFromSeed failed: %v", test.TcID, err)
				}

				pk := sk.Public().(*PublicKey).Bytes()
				skBytes := sk.Bytes()

				if !bytes.Equal(pk, result.pk) {
					t.Errorf("tcId=%d: public key mismatch\ngot:  %x\nwant: %x", test.TcID, pk, result.pk)
				}
				if !bytes.Equal(skBytes, result.sk) {
					t.Errorf("tcId=%d: private key mismatch\ngot:  %x\nwant: %x", test.TcID, skBytes, result.sk)
				}
			}
		})
	}
}

func TestACVPSigVer(t *testing.T) {
	promptData, err := readGzip("testdata/ML-DSA-sigVer-FIPS204/prompt.json.gz")
	if err != nil {
		t.Skipf("Could not read test data: %v", err)
	}
	resultsData, err := readGzip("testdata/ML-DSA-sigVer-FIPS204/expectedResults.json.gz")
	if err != nil {
		t.Skipf("Could not read test data: %v", err)
	}

	var prompt struct {
		TestGroups []struct {
			TgID         int      `json:"tgId"`
			ParameterSet string   `json:"parameterSet"`
			Pk           hexBytes `json:"pk"`
			Tests        []struct {
				TcID      int      `json:"tcId"`
				Message   hexBytes `json:"message"`
				Signature hexBytes `json:"signature"`
			} `json:"tests"`
		} `json:"testGroups"`
	}
	if err := json.Unmarshal(promptData, &prompt); err != nil {
		t.Fatal(err)
	}

	var results struct {
		TestGroups []struct {
			TgID  int `json:"tgId"`
			Tests []struct {
				TcID       int  `json:"tcId"`
				TestPassed bool `json:"testPassed"`
			} `json:"tests"`
		} `json:"testGroups"`
	}
	if err := json.Unmarshal(resultsData, &results); err != nil {
		t.Fatal(err)
	}

	type resultKey struct{ tgID, tcID int }
	resultMap := make(map[resultKey]bool)
	for _, group := range results.TestGroups {
		for _, test := range group.Tests {
			resultMap[resultKey{group.TgID, test.TcID}] = test.TestPassed
		}
	}

	for _, group := range prompt.TestGroups {
		p, ok := paramsByName[group.ParameterSet]
		if !ok {
			continue
		}
		t.Run(group.ParameterSet, func(t *testing.T) {
			pk, err := NewPublicKey(p, group.Pk)
			if err != nil {
				t.Fatalf("tgId=%d: NewPublicKey failed: %v", group.TgID, err)
			}

			for _, test := range group.Tests {
				expected, ok := resultMap[resultKey{group.TgID, test.TcID}]
				if !ok {
					t.Fatalf("Missing result for tgId=%d, tcId=%d", group.TgID, test.TcID)
				}

				// The vector's message is passed as the already-prepared M' of the internal interface.
				got := pk.VerifyInternal(test.Signature, test.Message)
				if got != expected {
					t.Errorf("tcId=%d: verification result mismatch: got %v, want %v", test.TcID, got, expected)
				}
			}
		})
	}
}

func TestACVPSigGen(t *testing.T) {
	promptData, err := readGzip("testdata/ML-DSA-sigGen-FIPS204/prompt.json.gz")
	if err != nil {
		t.Skipf("Could not read test data: %v", err)
	}
	resultsData, err := readGzip("testdata/ML-DSA-sigGen-FIPS204/expectedResults.json.gz")
	if err != nil {
		t.Skipf("Could not read test data: %v", err)
	}

	var prompt struct {
		TestGroups []struct {
			TgID          int    `json:"tgId"`
			ParameterSet  string `json:"parameterSet"`
			Deterministic bool   `json:"deterministic"`
			Tests         []struct {
				TcID    int      `json:"tcId"`
				Sk      hexBytes `json:"sk"`
				Message hexBytes `json:"message"`
				Rnd     hexBytes `json:"rnd"`
			} `json:"tests"`
		} `json:"testGroups"`
	}
	if err := json.Unmarshal(promptData, &prompt); err != nil {
		t.Fatal(err)
	}

	var results struct {
		TestGroups []struct {
			TgID  int `json:"tgId"`
			Tests []struct {
				TcID      int      `json:"tcId"`
				Signature hexBytes `json:"signature"`
			} `json:"tests"`
		} `json:"testGroups"`
	}
	if err := json.Unmarshal(resultsData, &results); err != nil {
		t.Fatal(err)
	}

	type resultKey struct{ tgID, tcID int }
	resultMap := make(map[resultKey]hexBytes)
	for _, group := range results.TestGroups {
		for _, test := range group.Tests {
			resultMap[resultKey{group.TgID, test.TcID}] = test.Signature
		}
	}

	for _, group := range prompt.TestGroups {
		p, ok := paramsByName[group.ParameterSet]
		if !ok {
			continue
		}
		t.Run(group.ParameterSet, func(t *testing.T) {
			for _, test := range group.Tests {
				expected, ok := resultMap[resultKey{group.TgID, test.TcID}]
				if !ok {
					t.Fatalf("Missing result for tgId=%d, tcId=%d", group.TgID, test.TcID)
				}

				sk, err := NewPrivateKey(p, test.Sk)
				if err != nil {
					t.Fatalf("tcId=%d: NewPrivateKey failed: %v", test.TcID, err)
				}

				var rnd [RandomnessSize]byte
				if !group.Deterministic {
					copy(rnd[:], test.Rnd)
				}

				sig, err := sk.SignInternal(rnd[:], test.Message)
				if err != nil {
					t.Fatalf("tcId=%d: SignInternal failed: %v", test.TcID, err)
				}

				if !bytes.Equal(sig, expected) {
					t.Errorf("tcId=%d: signature mismatch\ngot:  %x\nwant: %x", test.TcID, sig, expected)
				}
			}
		})
	}
}
