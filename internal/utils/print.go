package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

/**
 * Convert a struct to an ordered map preserving field declaration order
 * @param {interface{}} v - Struct value to convert
 * @returns {*orderedmap.OrderedMap} Ordered map keyed by the struct's json tags
 * @description
 * - Round-trips through encoding/json, so json tags decide the key names
 */
func StructToOrderedMap(v interface{}) (*orderedmap.OrderedMap, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("StructToOrderedMap: marshal failed: %v", err)
	}
	record := orderedmap.New()
	if err := json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("StructToOrderedMap: unmarshal failed: %v", err)
	}
	return record, nil
}

/**
 * Print a record list as an aligned table on stdout
 * @param {[]*orderedmap.OrderedMap} dataList - Records sharing the same key set
 * @description
 * - Column order follows the key order of the first record
 */
func PrintFormat(dataList []*orderedmap.OrderedMap) {
	if len(dataList) == 0 {
		return
	}
	keys := dataList[0].Keys()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	header := table.Row{}
	for _, key := range keys {
		header = append(header, strings.ToUpper(key))
	}
	t.AppendHeader(header)

	for _, record := range dataList {
		row := table.Row{}
		for _, key := range keys {
			value, _ := record.Get(key)
			row = append(row, value)
		}
		t.AppendRow(row)
	}
	t.Render()
}

// PrintYaml 以YAML格式输出数据
func PrintYaml(v interface{}) {
	out, err := yaml.Marshal(v)
	if err != nil {
		fmt.Printf("marshal yaml failed: %v\n", err)
		return
	}
	fmt.Print(string(out))
}

// PrintJson 以JSON格式输出数据
func PrintJson(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("marshal json failed: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
