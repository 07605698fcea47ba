package mydiff

import (
	"reflect"
	"testing"
)

func TestMergeOps(t *testing.T) {
	tests := []struct {
		name string
		ops  []Op
		want []Op
	}{
		{
			name: "empty",
			ops:  nil,
			want: nil,
		},
		{
			name: "inserts at same position concatenate",
			ops: []Op{
				{Kind: OpInsert, Pos: 3, Payload: []byte("a")},
				{Kind: OpInsert, Pos: 3, Payload: []byte("b")},
				{Kind: OpInsert, Pos: 3, Payload: []byte("c")},
			},
			want: []Op{
				{Kind: OpInsert, Pos: 3, Payload: []byte("abc")},
			},
		},
		{
			name: "contiguous deletes sum",
			ops: []Op{
				{Kind: OpDelete, Pos: 0, Len: 1},
				{Kind: OpDelete, Pos: 1, Len: 1},
				{Kind: OpDelete, Pos: 2, Len: 2},
			},
			want: []Op{
				{Kind: OpDelete, Pos: 0, Len: 4},
			},
		},
		{
			name: "gap breaks a delete run",
			ops: []Op{
				{Kind: OpDelete, Pos: 0, Len: 1},
				{Kind: OpDelete, Pos: 3, Len: 1},
			},
			want: []Op{
				{Kind: OpDelete, Pos: 0, Len: 1},
				{Kind: OpDelete, Pos: 3, Len: 1},
			},
		},
		{
			name: "inserts at different positions stay apart",
			ops: []Op{
				{Kind: OpInsert, Pos: 0, Payload: []byte("a")},
				{Kind: OpInsert, Pos: 1, Payload: []byte("b")},
			},
			want: []Op{
				{Kind: OpInsert, Pos: 0, Payload: []byte("a")},
				{Kind: OpInsert, Pos: 1, Payload: []byte("b")},
			},
		},
		{
			name: "kind change breaks a run",
			ops: []Op{
				{Kind: OpDelete, Pos: 0, Len: 1},
				{Kind: OpInsert, Pos: 1, Payload: []byte("x")},
				{Kind: OpDelete, Pos: 1, Len: 1},
			},
			want: []Op{
				{Kind: OpDelete, Pos: 0, Len: 1},
				{Kind: OpInsert, Pos: 1, Payload: []byte("x")},
				{Kind: OpDelete, Pos: 1, Len: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeOps(tt.ops)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("mergeOps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConsolidateOps(t *testing.T) {
	tests := []struct {
		name string
		ops  []Op
		want []Op
	}{
		{
			name: "empty",
			ops:  nil,
			want: nil,
		},
		{
			name: "equal spans fuse completely",
			ops: []Op{
				{Kind: OpDelete, Pos: 0, Len: 2},
				{Kind: OpInsert, Pos: 2, Payload: []byte("xy")},
			},
			want: []Op{
				{Kind: OpChange, Pos: 0, Payload: []byte("xy")},
			},
		},
		{
			name: "longer delete leaves a delete remainder",
			ops: []Op{
				{Kind: OpDelete, Pos: 0, Len: 3},
				{Kind: OpInsert, Pos: 3, Payload: []byte("x")},
			},
			want: []Op{
				{Kind: OpChange, Pos: 0, Payload: []byte("x")},
				{Kind: OpDelete, Pos: 1, Len: 2},
			},
		},
		{
			name: "longer insert leaves an insert remainder",
			ops: []Op{
				{Kind: OpDelete, Pos: 0, Len: 1},
				{Kind: OpInsert, Pos: 1, Payload: []byte("xyz")},
			},
			want: []Op{
				{Kind: OpChange, Pos: 0, Payload: []byte("x")},
				{Kind: OpInsert, Pos: 1, Payload: []byte("yz")},
			},
		},
		{
			name: "non-adjacent pair untouched",
			ops: []Op{
				{Kind: OpDelete, Pos: 0, Len: 1},
				{Kind: OpInsert, Pos: 5, Payload: []byte("x")},
			},
			want: []Op{
				{Kind: OpDelete, Pos: 0, Len: 1},
				{Kind: OpInsert, Pos: 5, Payload: []byte("x")},
			},
		},
		{
			name: "insert before delete untouched",
			ops: []Op{
				{Kind: OpInsert, Pos: 0, Payload: []byte("x")},
				{Kind: OpDelete, Pos: 0, Len: 1},
			},
			want: []Op{
				{Kind: OpInsert, Pos: 0, Payload: []byte("x")},
				{Kind: OpDelete, Pos: 0, Len: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := consolidateOps(tt.ops)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("consolidateOps() = %v, want %v", got, tt.want)
			}
		})
	}
}
