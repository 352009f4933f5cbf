package api

// GraphQL query documents, aliased so the response field names line up with
// the struct tags in types.go.

const problemListQuery = `
query problemsetQuestionList($categorySlug: String, $limit: Int, $skip: Int, $filters: QuestionListFilterInput) {
  problemsetQuestionList: questionList(
    categorySlug: $categorySlug
    limit: $limit
    skip: $skip
    filters: $filters
  ) {
    total: totalNum
    questions: data {
      frontendQuestionId: questionFrontendId
      title
      titleSlug
      difficulty
      status
      acRate
      isPaidOnly
      topicTags {
        name
        slug
      }
    }
  }
}
`

const questionDetailQuery = `
query questionDetail($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    questionId
    frontendQuestionId: questionFrontendId
    title
    titleSlug
    difficulty
    content
    isPaidOnly
    topicTags {
      name
      slug
    }
    codeSnippets {
      lang
      langSlug
      code
    }
    exampleTestcaseList
    sampleTestCase
    hints
    status
  }
}
`

const globalDataQuery = `
query {
  userStatus {
    isSignedIn
    username
  }
}
`

const favoritesListQuery = `
query favoritesList {
  favoritesLists {
    allFavorites {
      idHash
      name
      description
      viewCount
      creator
      isWatched
      isPublicFavorite
      questions {
        questionId
        status
        title
        titleSlug
      }
    }
  }
}
`

const userProfileQuery = `
query getUserProfile($username: String!) {
  matchedUser(username: $username) {
    submitStats {
      acSubmissionNum {
        difficulty
        count
      }
    }
  }
  allQuestionsCount {
    difficulty
    count
  }
}
`
