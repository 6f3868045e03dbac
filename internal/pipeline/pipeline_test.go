package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stageTypes(p *Pipeline) []StageType {
	var out []StageType
	for _, s := range p.GetStages() {
		out = append(out, s.Type)
	}
	return out
}

func TestBuildPipeline_Orderings(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   []StageType
		render string
	}{
		{
			name:   "rescale normalize filter",
			params: Params{Ordering: OrderingRescaleNormalizeFilter, Filter: StageButterworth},
			want:   []StageType{StageRescale, StageNormalize, StageButterworth},
			render: "rescale -> normalize -> butterworth",
		},
		{
			name:   "filter first",
			params: Params{Ordering: OrderingFilterRescaleNormalize, Filter: StageButterworth},
			want:   []StageType{StageButterworth, StageRescale, StageNormalize},
			render: "butterworth -> rescale -> normalize",
		},
		{
			name:   "no filter",
			params: Params{Ordering: OrderingRescaleNormalize, Filter: StageButterworth},
			want:   []StageType{StageRescale, StageNormalize},
			render: "rescale -> normalize",
		},
		{
			name: "fft lowpass with stretch",
			params: Params{
				Ordering:     OrderingRescaleNormalizeFilter,
				Filter:       StageLowPass,
				WindowLength: 100,
				CutoffHz:     25,
				SampleRate:   100,
			},
			want:   []StageType{StageStretch, StageRescale, StageNormalize, StageLowPass},
			render: "stretch -> rescale -> normalize -> fft-lowpass",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := BuildPipeline(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stageTypes(p))
			assert.Equal(t, tt.render, p.String())
		})
	}
}

func TestBuildPipeline_FilterParameters(t *testing.T) {
	p, err := BuildPipeline(Params{
		Ordering:     OrderingFilterRescaleNormalize,
		Filter:       StageLowPass,
		WindowLength: 60,
		CutoffHz:     20,
		SampleRate:   100,
	})
	require.NoError(t, err)

	stages := p.GetStages()
	require.Len(t, stages, 4)
	assert.Equal(t, 60, stages[0].Length)
	assert.Equal(t, 20.0, stages[1].CutoffHz)
	assert.Equal(t, 100.0, stages[1].SampleRate)
}

func TestBuildPipeline_Errors(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"unset ordering", Params{Filter: StageButterworth}},
		{"unknown ordering", Params{Ordering: Ordering(42), Filter: StageButterworth}},
		{"non-filter stage as filter", Params{Ordering: OrderingRescaleNormalizeFilter, Filter: StageRescale}},
		{"negative window", Params{Ordering: OrderingRescaleNormalize, Filter: StageButterworth, WindowLength: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildPipeline(tt.params)
			assert.Error(t, err)
		})
	}
}

func TestGetStages_ReturnsCopy(t *testing.T) {
	p, err := BuildPipeline(Params{Ordering: OrderingRescaleNormalize, Filter: StageButterworth})
	require.NoError(t, err)

	stages := p.GetStages()
	stages[0].Type = StageLowPass
	assert.Equal(t, StageRescale, p.GetStages()[0].Type)
}

func TestStageType_String(t *testing.T) {
	assert.Equal(t, "stage(99)", StageType(99).String())
	assert.Equal(t, "normalize", StageNormalize.String())
}
