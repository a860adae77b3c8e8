// Package report assembles analytics metrics into period-over-period reports.
package report

import (
	"fmt"
	"slices"
)

// Category groups related metrics in a report.
type Category int

const (
	CategoryProjectCreation Category = iota
	CategoryUserActivity
	CategoryShareActivity
	CategoryExports
)

// Categories lists every category in report order.
var Categories = []Category{
	CategoryProjectCreation,
	CategoryUserActivity,
	CategoryShareActivity,
	CategoryExports,
}

var categoryKeys = map[Category]string{
	CategoryProjectCreation: "project-creation",
	CategoryUserActivity:    "user-activity",
	CategoryShareActivity:   "share-activity",
	CategoryExports:         "exports",
}

var categoryTitles = map[Category]string{
	CategoryProjectCreation: "Project Creation",
	CategoryUserActivity:    "User Activity",
	CategoryShareActivity:   "Share Activity",
	CategoryExports:         "Exports",
}

// String returns the category's catalogue key.
func (c Category) String() string {
	if k, ok := categoryKeys[c]; ok {
		return k
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Title returns the category's display name.
func (c Category) Title() string {
	return categoryTitles[c]
}

// ParseCategory resolves a catalogue key such as "user-activity".
func ParseCategory(s string) (Category, error) {
	for c, k := range categoryKeys {
		if k == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown metric category %q", s)
}

// MetricName identifies a metric within the report.
type MetricName string

const (
	MetricSinglecamProjectCreated   MetricName = "singlecam_project_created"
	MetricMulticamProjectCreated    MetricName = "multicam_project_created"
	MetricProjectCreatedByWebApp    MetricName = "project_created_by_web_app"
	MetricProjectCreatedByDesktop   MetricName = "project_created_by_desktop_app"
	MetricNewUser                   MetricName = "new_user"
	MetricFileUploaded              MetricName = "file_uploaded"
	MetricTotalVideoDuration        MetricName = "total_video_duration"
	MetricFileUploadFailed          MetricName = "file_upload_failed"
	MetricReturningUser             MetricName = "returning_user"
	MetricOpenShareLink             MetricName = "open_share_link"
	MetricCreateShareLink           MetricName = "create_share_link"
	MetricExportMP4Landscape        MetricName = "export_mp4_landscape"
	MetricExportMP4LandscapeNoCapts MetricName = "export_mp4_landscape_without_captions"
	MetricExportMP4LandscapeCapts   MetricName = "export_mp4_landscape_with_captions"
	MetricExportMP4Vertical         MetricName = "export_mp4_vertical"
	MetricExportMP4VerticalNoCapts  MetricName = "export_mp4_vertical_without_captions"
	MetricExportMP4VerticalCapts    MetricName = "export_mp4_vertical_with_captions"
	MetricExportPremiere            MetricName = "export_premiere"
	MetricExportDavinci             MetricName = "export_davinci"
	MetricExportFCP                 MetricName = "export_fcp"
	MetricTotalExports              MetricName = "total_exports"
)

type metricInfo struct {
	category Category
	title    string
}

var metricInfos = map[MetricName]metricInfo{
	MetricSinglecamProjectCreated:   {CategoryProjectCreation, "Singlecam projects created"},
	MetricMulticamProjectCreated:    {CategoryProjectCreation, "Multicam projects created"},
	MetricProjectCreatedByWebApp:    {CategoryProjectCreation, "Projects created by web app"},
	MetricProjectCreatedByDesktop:   {CategoryProjectCreation, "Projects created by desktop app"},
	MetricNewUser:                   {CategoryUserActivity, "New users"},
	MetricFileUploaded:              {CategoryUserActivity, "Files uploaded"},
	MetricTotalVideoDuration:        {CategoryUserActivity, "Total video duration"},
	MetricFileUploadFailed:          {CategoryUserActivity, "Unsuccessful upload attempts"},
	MetricReturningUser:             {CategoryUserActivity, "Returning users"},
	MetricOpenShareLink:             {CategoryShareActivity, "Share links opened"},
	MetricCreateShareLink:           {CategoryShareActivity, "Share links created"},
	MetricExportMP4Landscape:        {CategoryExports, "Total Mp4 (Landscape)"},
	MetricExportMP4LandscapeNoCapts: {CategoryExports, "Landscape without captions"},
	MetricExportMP4LandscapeCapts:   {CategoryExports, "Landscape with captions"},
	MetricExportMP4Vertical:         {CategoryExports, "Total Mp4 (Vertical)"},
	MetricExportMP4VerticalNoCapts:  {CategoryExports, "Vertical without captions"},
	MetricExportMP4VerticalCapts:    {CategoryExports, "Vertical with captions"},
	MetricExportPremiere:            {CategoryExports, "Premiere Pro"},
	MetricExportDavinci:             {CategoryExports, "DaVinci Resolve"},
	MetricExportFCP:                 {CategoryExports, "Final Cut Pro"},
	MetricTotalExports:              {CategoryExports, "Total exports"},
}

// Known reports whether m is a metric the report knows how to display.
func (m MetricName) Known() bool {
	_, ok := metricInfos[m]
	return ok
}

// Category returns the category m belongs to.
func (m MetricName) Category() Category {
	return metricInfos[m].category
}

// Title returns the display name of m, falling back to its key.
func (m MetricName) Title() string {
	if info, ok := metricInfos[m]; ok {
		return info.title
	}
	return string(m)
}

// Value is one metric reading. A nil Value means the backend had no data.
type Value struct {
	Name  MetricName
	Value *float64
}

type section struct {
	category Category
	values   []Value
}

// ReportMetrics is an immutable set of metric readings grouped by category.
// The zero value is an empty report.
type ReportMetrics struct {
	sections []section
}

// Categories returns the categories present in the report, in report order.
func (r ReportMetrics) Categories() []Category {
	out := make([]Category, 0, len(r.sections))
	for _, s := range r.sections {
		out = append(out, s.category)
	}
	return out
}

// Metrics returns the readings of category c in insertion order.
func (r ReportMetrics) Metrics(c Category) []Value {
	for _, s := range r.sections {
		if s.category == c {
			return cloneValues(s.values)
		}
	}
	return nil
}

// Lookup returns the value of name within category c. The boolean is false
// when the metric is not part of the report at all.
func (r ReportMetrics) Lookup(c Category, name MetricName) (*float64, bool) {
	for _, s := range r.sections {
		if s.category != c {
			continue
		}
		for _, v := range s.values {
			if v.Name == name {
				return clonePtr(v.Value), true
			}
		}
	}
	return nil, false
}

// Empty reports whether no metric in the report carries a value.
func (r ReportMetrics) Empty() bool {
	for _, s := range r.sections {
		for _, v := range s.values {
			if v.Value != nil {
				return false
			}
		}
	}
	return true
}

// Builder assembles a ReportMetrics. It is not safe for concurrent use.
type Builder struct {
	values map[Category][]Value
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{values: make(map[Category][]Value)}
}

// Set records the value of name under category c. Setting a metric twice
// replaces its value and keeps its original position.
func (b *Builder) Set(c Category, name MetricName, v *float64) *Builder {
	if v != nil {
		f := *v
		v = &f
	}
	values := b.values[c]
	for i := range values {
		if values[i].Name == name {
			values[i].Value = v
			return b
		}
	}
	b.values[c] = append(values, Value{Name: name, Value: v})
	return b
}

// Build returns the assembled report with categories in report order.
// The builder can keep being used without affecting the result.
func (b *Builder) Build() ReportMetrics {
	var r ReportMetrics
	for _, c := range Categories {
		values, ok := b.values[c]
		if !ok {
			continue
		}
		r.sections = append(r.sections, section{category: c, values: cloneValues(values)})
	}
	return r
}

func cloneValues(values []Value) []Value {
	out := slices.Clone(values)
	for i := range out {
		out[i].Value = clonePtr(out[i].Value)
	}
	return out
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	f := *v
	return &f
}

// Float returns a pointer to v, for building reports from literals.
func Float(v float64) *float64 {
	return &v
}
