// Package manifest reads and patches JSON script manifests. Patching goes
// through sjson so fields this package doesn't know about survive a
// round-trip.
package manifest

import (
	"fmt"
	"io"

	"github.com/scriptorch/orch"
	"github.com/scriptorch/orch/lib/utils"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Load script entries from manifest bytes. The manifest is an object with
// a "scripts" array.
func Load(bin []byte) ([]orch.ScriptEntry, error) {
	if !gjson.ValidBytes(bin) {
		return nil, &orch.Error{Code: orch.ErrManifest, Details: "not valid json"}
	}

	scripts := gjson.GetBytes(bin, "scripts")
	if !scripts.IsArray() {
		return nil, &orch.Error{Code: orch.ErrManifest, Details: `"scripts" is not an array`}
	}

	list := []orch.ScriptEntry{}
	scripts.ForEach(func(_, v gjson.Result) bool {
		list = append(list, orch.ScriptEntry{
			Src:        v.Get("src").String(),
			InlineCode: v.Get("inlineCode").String(),
		})
		return true
	})
	return list, nil
}

// LoadReader is Load over a reader.
func LoadReader(r io.Reader) ([]orch.ScriptEntry, error) {
	obj, err := utils.ReadJSON(r)
	if err != nil {
		return nil, err
	}
	return Load([]byte(obj.Raw))
}

// Add appends an entry to the manifest's scripts array.
func Add(manifest string, e orch.ScriptEntry) (string, error) {
	if !gjson.Get(manifest, "scripts").IsArray() {
		var err error
		manifest, err = sjson.Set(manifest, "scripts", []interface{}{})
		if err != nil {
			return "", err
		}
	}
	return sjson.SetRaw(manifest, "scripts.-1", utils.MustToJSON(e))
}

// Remove deletes the entry at index i from the manifest's scripts array.
func Remove(manifest string, i int) (string, error) {
	return sjson.Delete(manifest, fmt.Sprintf("scripts.%d", i))
}

// Save renders entries as manifest bytes.
func Save(list []orch.ScriptEntry) []byte {
	return utils.MustToJSONBytes(map[string]interface{}{"scripts": list})
}
