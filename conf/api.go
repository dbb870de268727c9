// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conf reads Section.Option settings from strings and .conf files.
package conf

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// ConfMap is accessed via confMap[sectionName][optionName][optionValueIndex] or via the methods below.
type ConfMap map[string]ConfMapSection

type ConfMapSection map[string]ConfMapOption

type ConfMapOption []string

// MakeConfMap returns a newly created empty ConfMap.
func MakeConfMap() ConfMap {
	return make(ConfMap)
}

// MakeConfMapFromStrings returns a newly created ConfMap loaded with the contents specified in confStrings.
func MakeConfMapFromStrings(confStrings []string) (ConfMap, error) {
	confMap := MakeConfMap()
	if err := confMap.UpdateFromStrings(confStrings); err != nil {
		return nil, fmt.Errorf("error building confMap from conf strings: %v", err)
	}
	return confMap, nil
}

// MakeConfMapFromFile returns a newly created ConfMap loaded with the contents of the confFilePath-specified file.
func MakeConfMapFromFile(confFilePath string) (ConfMap, error) {
	confMap := MakeConfMap()
	if err := confMap.UpdateFromFile(confFilePath); err != nil {
		return nil, err
	}
	return confMap, nil
}

const (
	assignment = "([ \t]*[=:][ \t]*)"
	dot        = "(\\.)"
	separator  = "([ \t]+|([ \t]*,[ \t]*))"
	token      = "([0-9A-Za-z_\\*\\-/:\\.\\[\\]]+)"
)

// A string to load looks like:
//
//	<section_name>.<option_name> =
//	<section_name>.<option_name> : <value>
//	<section_name>.<option_name> = <value>, <value>
var (
	stringRE     = regexp.MustCompile("\\A" + token + dot + token + assignment + "(" + token + "(" + separator + token + ")*)?\\z")
	optionLineRE = regexp.MustCompile("\\A" + token + assignment + "(" + token + "(" + separator + token + ")*)?\\z")
	sectionRE    = regexp.MustCompile("\\A\\[" + token + "\\]\\z")

	assignmentRE = regexp.MustCompile(assignment)
	separatorRE  = regexp.MustCompile(separator)
)

// UpdateFromString modifies confMap based on an update specified in
// confString (e.g., from an extra command-line argument).
func (confMap ConfMap) UpdateFromString(confString string) error {
	trimmed := strings.Trim(confString, " \t")
	if trimmed == "" {
		return fmt.Errorf("trimmed confString: %q was found to be empty", confString)
	}
	if !stringRE.MatchString(trimmed) {
		return fmt.Errorf("malformed confString: %q", confString)
	}
	sectionName, optionPayload, _ := strings.Cut(trimmed, ".")
	confMap.setOption(sectionName, optionPayload)
	return nil
}

// UpdateFromStrings applies UpdateFromString to each of confStrings in order.
func (confMap ConfMap) UpdateFromStrings(confStrings []string) error {
	for _, confString := range confStrings {
		if err := confMap.UpdateFromString(confString); err != nil {
			return err
		}
	}
	return nil
}

// UpdateFromFile modifies confMap based on the .INI-style file at confFilePath:
//
//	[<section_name>]
//	<option_name> : <value> <value>, <value>
//	# a comment
//	; another comment
func (confMap ConfMap) UpdateFromFile(confFilePath string) error {
	f, err := os.Open(confFilePath)
	if err != nil {
		return err
	}
	defer f.Close()

	var sectionName string
	scanner := bufio.NewScanner(f)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := scanner.Text()
		if i := strings.IndexAny(line, "#;"); i >= 0 {
			line = line[:i]
		}
		line = strings.Trim(line, " \t")
		switch {
		case line == "":
		case sectionRE.MatchString(line):
			sectionName = line[1 : len(line)-1]
			if _, ok := confMap[sectionName]; !ok {
				confMap[sectionName] = make(ConfMapSection)
			}
		case optionLineRE.MatchString(line):
			if sectionName == "" {
				return fmt.Errorf("%s:%d: option found before first section", confFilePath, lineNumber)
			}
			confMap.setOption(sectionName, line)
		default:
			return fmt.Errorf("%s:%d: malformed line: %q", confFilePath, lineNumber, line)
		}
	}
	return scanner.Err()
}

func (confMap ConfMap) setOption(sectionName, optionPayload string) {
	parts := assignmentRE.Split(optionPayload, 2)
	optionName := parts[0]
	values := separatorRE.Split(parts[1], -1)
	if len(values) == 1 && values[0] == "" {
		values = []string{}
	}
	section, ok := confMap[sectionName]
	if !ok {
		section = make(ConfMapSection)
		confMap[sectionName] = section
	}
	section[optionName] = values
}

// FetchOptionValueStringSlice returns the values of the specified option.
func (confMap ConfMap) FetchOptionValueStringSlice(sectionName string, optionName string) ([]string, error) {
	section, ok := confMap[sectionName]
	if !ok {
		return nil, fmt.Errorf("section '%v' not found", sectionName)
	}
	option, ok := section[optionName]
	if !ok {
		return nil, fmt.Errorf("option '%v' not found in section '%v'", optionName, sectionName)
	}
	return option, nil
}

// FetchOptionValueString returns the single value of the specified option.
func (confMap ConfMap) FetchOptionValueString(sectionName string, optionName string) (string, error) {
	option, err := confMap.FetchOptionValueStringSlice(sectionName, optionName)
	if err != nil {
		return "", err
	}
	if len(option) != 1 {
		return "", fmt.Errorf("[%v]%v must have a single value", sectionName, optionName)
	}
	return option[0], nil
}

// FetchOptionValueBool returns the specified option parsed as a boolean.
func (confMap ConfMap) FetchOptionValueBool(sectionName string, optionName string) (bool, error) {
	s, err := confMap.FetchOptionValueString(sectionName, optionName)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "yes", "on", "true":
		return true, nil
	case "no", "off", "false":
		return false, nil
	}
	return false, fmt.Errorf("[%v]%v option value '%v' must be a boolean", sectionName, optionName, s)
}

// FetchOptionValueInt returns the specified option parsed as a decimal integer.
func (confMap ConfMap) FetchOptionValueInt(sectionName string, optionName string) (int, error) {
	s, err := confMap.FetchOptionValueString(sectionName, optionName)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("[%v]%v option value '%v' must be an integer", sectionName, optionName, s)
	}
	return v, nil
}
