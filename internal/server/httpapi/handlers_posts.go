package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// postID reads the {id} route variable. The route pattern only admits
// digits, so the one failure left is overflow.
func postID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil
}

func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	page, err := s.posts.List(r.Context(), queryInt(r, "page"), queryInt(r, "per_page"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostPageJSON(page))
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	post, err := s.posts.Create(r.Context(), userIDFrom(r.Context()), req.Content, req.Image)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, postResponse{Message: "Post created successfully", Post: toPostJSON(post)})
}

func (s *Server) updatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	var req updatePostRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	post, err := s.posts.Update(r.Context(), userIDFrom(r.Context()), id, req.Content, req.Image)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, postResponse{Message: "Post updated successfully", Post: toPostJSON(post)})
}

func (s *Server) deletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	if err := s.posts.Delete(r.Context(), userIDFrom(r.Context()), id); err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Post deleted successfully"})
}

func (s *Server) toggleLike(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	liked, count, err := s.posts.ToggleLike(r.Context(), userIDFrom(r.Context()), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	msg := "Post unliked successfully"
	if liked {
		msg = "Post liked successfully"
	}
	writeJSON(w, http.StatusOK, likeResponse{Message: msg, LikesCount: count, IsLiked: liked})
}

func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	comments, err := s.posts.Comments(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out := commentListResponse{Comments: make([]commentJSON, 0, len(comments))}
	for i := range comments {
		out.Comments = append(out.Comments, toCommentJSON(&comments[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) addComment(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	var req commentRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	comment, err := s.posts.AddComment(r.Context(), userIDFrom(r.Context()), id, req.Content)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commentResponse{Message: "Comment created successfully", Comment: toCommentJSON(comment)})
}
