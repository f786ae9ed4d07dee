/*
 Copyright (C) 2024 Douglas Wayne Potter

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as
 published by the Free Software Foundation, either version 3 of the
 License, or (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package cover

import (
	"encoding/json"
	"os"
)

// ReadJsonInstance reads an Instance previously written by WriteJsonInstance
// (or cmd/generate_instance) from filename.
func ReadJsonInstance(filename string) (*Instance, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var ins Instance
	if err := json.Unmarshal(b, &ins); err != nil {
		return nil, err
	}
	return &ins, nil
}

// WriteJsonInstance writes ins to filename as indented JSON.
func WriteJsonInstance(filename string, ins Instance) error {
	b, err := json.MarshalIndent(ins, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0600)
}
