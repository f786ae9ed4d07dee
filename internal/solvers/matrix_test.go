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

package solvers

import (
	"reflect"
	"testing"
)

func TestMatrixConvertRoundTrips(t *testing.T) {
	ccs := cCSMatrix{0, 1, 2, sen, sen, 1, sen}
	crs, err := ccs.Convert()
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := cRSMatrix{0, sen, 0, 2, sen, 0, sen}
	if !reflect.DeepEqual(crs, want) {
		t.Fatalf("\n%v !=\n%v", crs, want)
	}

	back, err := crs.Convert()
	if err != nil {
		t.Fatalf("Convert back: %v", err)
	}
	if !reflect.DeepEqual(back, ccs) {
		t.Fatalf("\n%v !=\n%v", back, ccs)
	}
}

func TestMatrixRejectsAllSentinelInput(t *testing.T) {
	data := make([]uint32, 12)
	for i := range data {
		data[i] = sen
	}

	if _, err := makeCompressedRowMatrix(data); err == nil {
		t.Fatalf("expected error for all-sentinel input")
	}
	if _, err := makeCompressedColumnMatrix(data); err == nil {
		t.Fatalf("expected error for all-sentinel input")
	}
}

func TestMatrixVectorMultiply(t *testing.T) {
	tests := []struct {
		matrix []uint32
		vector []float64
		want   []float64
	}{
		{
			matrix: []uint32{0, sen, 1, sen, 2, sen},
			vector: []float64{1, 2, 3},
			want:   []float64{1, 2, 3},
		},
		{
			matrix: []uint32{0, sen, 0, 1, sen, 0, 1, 2, sen},
			vector: []float64{1, 1, 1},
			want:   []float64{1, 2, 3},
		},
		{
			matrix: []uint32{0, sen, 0, 1, sen, 0, 1, 2, sen},
			vector: []float64{1, -0.5, 3},
			want:   []float64{1, 0.5, 3.5},
		},
		{
			matrix: []uint32{0, sen, 0, 1, sen, sen, sen},
			vector: []float64{1, -0.5, 3, 4},
			want:   []float64{1, 0.5, 0, 0},
		},
	}

	for _, tc := range tests {
		m, err := makeCompressedRowMatrix(tc.matrix)
		if err != nil {
			t.Fatalf("makeCompressedRowMatrix: %v", err)
		}
		got := make([]float64, len(tc.want))
		m.MatrixVectorMultiply(tc.vector, got)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("\n%v !=\n%v", got, tc.want)
		}
	}
}
