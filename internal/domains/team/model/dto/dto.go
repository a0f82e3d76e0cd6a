package dto

import (
	"fmt"
	"mime/multipart"
	"net/url"

	"armada/internal/domains/team/model"
	"armada/shared"
	"armada/shared/constant"
	gDto "armada/shared/dto"
	"armada/shared/localstore"
	"armada/shared/timezone"
)

const avatarURLFormat = "https://ui-avatars.com/api/?name=%s&background=random"

// DefaultFoto builds the generated-avatar URL used when a member has no
// photo.
func DefaultFoto(nama string) string {
	return fmt.Sprintf(avatarURLFormat, url.QueryEscape(nama))
}

type CreateMemberRequest struct {
	Nama    string `json:"nama"    validate:"required,max=255"`
	Jabatan string `json:"jabatan" validate:"required,max=255"`
	Foto    string `json:"foto"    validate:"omitempty,url"`
}

func (c *CreateMemberRequest) ToModel(user string) model.Member {
	foto := c.Foto
	if foto == "" {
		foto = DefaultFoto(c.Nama)
	}

	now := timezone.Now()

	return model.Member{
		ID:         localstore.NewID(),
		Nama:       c.Nama,
		Jabatan:    c.Jabatan,
		Foto:       foto,
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

// UpdateMemberRequest leaves the stored photo untouched when foto is blank.
type UpdateMemberRequest struct {
	Nama    string `db:"nama"    json:"nama"    validate:"omitempty,max=255"`
	Jabatan string `db:"jabatan" json:"jabatan" validate:"omitempty,max=255"`
	Foto    string `db:"foto"    json:"foto"    validate:"omitempty,url"`
}

type MemberResponse struct {
	ID      string `json:"id"`
	Nama    string `json:"nama"`
	Jabatan string `json:"jabatan"`
	Foto    string `json:"foto"`
	gDto.Metadata
}

func (r *MemberResponse) FromModel(mod model.Member) {
	r.ID = mod.ID
	r.Nama = mod.Nama
	r.Jabatan = mod.Jabatan
	r.Foto = mod.Foto
	r.Metadata.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
	r.Metadata.ModifiedAt = timezone.Format(mod.ModifiedAt, constant.DateFormat)
	r.Metadata.CreatedBy = mod.CreatedBy
	r.Metadata.ModifiedBy = mod.ModifiedBy
}

type GetMembersResponse struct {
	Members   []MemberResponse `json:"members"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetMembersResponse) FromModels(models []model.Member, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Members = make([]MemberResponse, len(models))
	for i, mod := range models {
		r.Members[i].FromModel(mod)
	}
}

type UploadPhotoRequest struct {
	Photo     *multipart.FileHeader `json:"photo" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	PhotoFile multipart.File        `json:"-"`
}

type UploadPhotoResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadPhotoResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
