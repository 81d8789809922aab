// Copyright © 2025 Attestant Limited.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types_test

import (
	"testing"
	"time"

	"github.com/attestantio/go-epochtime/types"
	"github.com/stretchr/testify/require"
)

func TestEpochSizeValid(t *testing.T) {
	require.False(t, types.EpochSize(0).Valid())
	require.True(t, types.EpochSize(1).Valid())
	require.True(t, types.EpochSize(21600).Valid())
}

func TestSlotRange(t *testing.T) {
	r := types.SlotRange{First: 20, Last: 29}

	require.True(t, r.Contains(20))
	require.True(t, r.Contains(25))
	require.True(t, r.Contains(29))
	require.False(t, r.Contains(19))
	require.False(t, r.Contains(30))
	require.Equal(t, uint64(10), r.Len())

	single := types.SlotRange{First: 5, Last: 5}
	require.True(t, single.Contains(5))
	require.Equal(t, uint64(1), single.Len())
}

func TestSystemStart(t *testing.T) {
	start := types.SystemStart(time.Date(2017, 9, 23, 21, 44, 51, 0, time.UTC))

	require.Equal(t, start.Time(), start.Add(0))
	require.Equal(t, start.Time().Add(25*time.Second), start.Add(types.RelativeTime(25*time.Second)))
	require.Equal(t, start.Time().Add(-time.Minute), start.Add(types.RelativeTime(-time.Minute)))
}
