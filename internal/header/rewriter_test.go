package header_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/copycheck/internal/header"
)

const (
	rewriterTestCurrentYearConstant = 2024
)

func TestRewriterRewrite(testInstance *testing.T) {
	testCases := []struct {
		name                string
		contents            string
		expectedContents    string
		expectedNoticeFound bool
	}{
		{
			name:                "stale_single_year_gains_current_year",
			contents:            "// Copyright (c) 2020 Example Ltd.\npackage example\n",
			expectedContents:    "// Copyright (c) 2020, 2024 Example Ltd.\npackage example\n",
			expectedNoticeFound: true,
		},
		{
			name:                "consecutive_years_compact_into_range",
			contents:            "// Copyright (C) 2021, 2022, 2023 Example Ltd.\n",
			expectedContents:    "// Copyright (c) 2021-2024 Example Ltd.\n",
			expectedNoticeFound: true,
		},
		{
			name:                "current_year_already_covered_rewrites_identically",
			contents:            "// Copyright (c) 2020, 2024 Example Ltd.\n",
			expectedContents:    "// Copyright (c) 2020, 2024 Example Ltd.\n",
			expectedNoticeFound: true,
		},
		{
			name:                "notice_without_years_gains_current_year",
			contents:            "// Copyright (c)\npackage example\n",
			expectedContents:    "// Copyright (c) 2024\npackage example\n",
			expectedNoticeFound: true,
		},
		{
			name:                "range_notation_expands_before_compacting",
			contents:            "// Copyright 2019-2021 Example Ltd.\n",
			expectedContents:    "// Copyright (c) 2019-2021, 2024 Example Ltd.\n",
			expectedNoticeFound: true,
		},
		{
			name:                "only_first_notice_is_rewritten",
			contents:            "// Copyright (c) 2020\n// Copyright (c) 2019\n",
			expectedContents:    "// Copyright (c) 2020, 2024\n// Copyright (c) 2019\n",
			expectedNoticeFound: true,
		},
		{
			name:                "notice_beyond_leading_lines_is_still_rewritten",
			contents:            "package example\n\nfunc placeholder() {}\n\n// Copyright (c) 2001\n",
			expectedContents:    "package example\n\nfunc placeholder() {}\n\n// Copyright (c) 2001, 2024\n",
			expectedNoticeFound: true,
		},
		{
			name:                "missing_notice_leaves_contents_unchanged",
			contents:            "package example\n",
			expectedContents:    "package example\n",
			expectedNoticeFound: false,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			rewriter := header.NewRewriter(rewriterTestCurrentYearConstant)

			rewrittenContents, noticeFound := rewriter.Rewrite(testCase.contents)
			require.Equal(subtest, testCase.expectedNoticeFound, noticeFound)
			require.Equal(subtest, testCase.expectedContents, rewrittenContents)
		})
	}
}
