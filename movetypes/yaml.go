// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package movetypes

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlDescriptorFile struct {
	Structs []yamlStructDef `yaml:"structs"`
}

type yamlStructDef struct {
	Type       string      `yaml:"type"`
	TypeParams []TypeParam `yaml:"type_params"`
	Fields     []FieldDef  `yaml:"fields"`
}

// LoadDescriptorsYAML reads struct definitions from a YAML document:
//
//	structs:
//	  - type: 0xabc::pool::Pool
//	    type_params:
//	      - {name: T, phantom: true}
//	    fields:
//	      - {name: id, type: 0x2::object::UID}
//	      - {name: reserve, type: 0x2::balance::Balance<T>}
func LoadDescriptorsYAML(r io.Reader) ([]*StructDescriptor, error) {
	var file yamlDescriptorFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse descriptor file: %w", err)
	}

	descs := make([]*StructDescriptor, 0, len(file.Structs))
	for i, def := range file.Structs {
		desc, err := DefineStruct(def.Type, def.TypeParams, def.Fields)
		if err != nil {
			return nil, fmt.Errorf("struct %d: %w", i, err)
		}
		descs = append(descs, desc)
	}
	return descs, nil
}

// LoadYAMLFile loads a descriptor file and registers all of its structs.
func (r *Registry) LoadYAMLFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	descs, err := LoadDescriptorsYAML(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return r.Register(descs...)
}
