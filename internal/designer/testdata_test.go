package designer

const mainFormCS = `namespace Demo
{
    partial class MainForm
    {
        private void InitializeComponent()
        {
            this.groupBox1 = new System.Windows.Forms.GroupBox();
            this.okButton = new System.Windows.Forms.Button();
            this.nameLabel = new System.Windows.Forms.Label();
            this.nameBox = new System.Windows.Forms.TextBox();
            this.progressBar1 = new System.Windows.Forms.ProgressBar();
            this.groupBox1.SuspendLayout();
            this.SuspendLayout();
            // 
            // groupBox1
            // 
            this.groupBox1.Controls.Add(this.nameLabel);
            this.groupBox1.Controls.Add(this.nameBox);
            this.groupBox1.Location = new System.Drawing.Point(12, 12);
            this.groupBox1.Name = "groupBox1";
            this.groupBox1.Size = new System.Drawing.Size(260, 100);
            this.groupBox1.Text = "Details";
            // 
            // okButton
            // 
            this.okButton.Location = new System.Drawing.Point(197, 226);
            this.okButton.Name = "okButton";
            this.okButton.Size = new System.Drawing.Size(75, 23);
            this.okButton.Text = "OK";
            this.okButton.Visible = false;
            // 
            // nameLabel
            // 
            this.nameLabel.Location = new System.Drawing.Point(6, 22);
            this.nameLabel.Text = "Name:";
            // 
            // nameBox
            // 
            this.nameBox.Location = new System.Drawing.Point(60, 19);
            this.nameBox.Size = new System.Drawing.Size(180, 20);
            // 
            // MainForm
            // 
            this.ClientSize = new System.Drawing.Size(284, 261);
            this.Controls.Add(this.okButton);
            this.Controls.Add(this.groupBox1);
            this.Controls.Add(this.progressBar1);
            this.groupBox1.ResumeLayout(false);
            this.ResumeLayout(false);
        }

        private System.Windows.Forms.GroupBox groupBox1;
        private System.Windows.Forms.Button okButton;
        private System.Windows.Forms.Label nameLabel;
        private System.Windows.Forms.TextBox nameBox;
        private System.Windows.Forms.ProgressBar progressBar1;
    }
}
`

const mainFormJSON = `[
    {
        "type": "Button",
        "name": "okButton",
        "position": "197, 226",
        "size": "75, 23",
        "text": "OK",
        "visibility": false
    },
    {
        "type": "Container",
        "name": "groupBox1",
        "position": "12, 12",
        "size": "260, 100",
        "text": "Details",
        "children": [
            {
                "type": "Label",
                "name": "nameLabel",
                "position": "6, 22",
                "text": "Name:"
            },
            {
                "type": "Textbox",
                "name": "nameBox",
                "position": "60, 19",
                "size": "180, 20"
            }
        ]
    }
]`

const mainFormVB = `<Global.Microsoft.VisualBasic.CompilerServices.DesignerGenerated()> _
Partial Class MainForm
    Inherits System.Windows.Forms.Form

    Private Sub InitializeComponent()
        Me.groupBox1 = New System.Windows.Forms.GroupBox()
        Me.okButton = New System.Windows.Forms.Button()
        Me.nameLabel = New System.Windows.Forms.Label()
        Me.nameBox = New System.Windows.Forms.TextBox()
        Me.progressBar1 = New System.Windows.Forms.ProgressBar()
        Me.groupBox1.SuspendLayout()
        Me.SuspendLayout()
        '
        'groupBox1
        '
        Me.groupBox1.Controls.Add(Me.nameLabel)
        Me.groupBox1.Controls.Add(Me.nameBox)
        Me.groupBox1.Location = New System.Drawing.Point(12, 12)
        Me.groupBox1.Name = "groupBox1"
        Me.groupBox1.Size = New System.Drawing.Size(260, 100)
        Me.groupBox1.Text = "Details"
        '
        'okButton
        '
        Me.okButton.Location = New System.Drawing.Point(197, 226)
        Me.okButton.Size = New System.Drawing.Size(75, 23)
        Me.okButton.Text = "OK"
        Me.okButton.Visible = False
        '
        'nameLabel
        '
        Me.nameLabel.Location = New System.Drawing.Point(6, 22)
        Me.nameLabel.Text = "Name:"
        '
        'nameBox
        '
        Me.nameBox.Location = New System.Drawing.Point(60, 19)
        Me.nameBox.Size = New System.Drawing.Size(180, 20)
        '
        'MainForm
        '
        Me.ClientSize = New System.Drawing.Size(284, 261)
        Me.Controls.Add(Me.okButton)
        Me.Controls.Add(Me.groupBox1)
        Me.Controls.Add(Me.progressBar1)
        Me.groupBox1.ResumeLayout(False)
        Me.ResumeLayout(False)
    End Sub

    Friend WithEvents groupBox1 As System.Windows.Forms.GroupBox
    Friend WithEvents okButton As System.Windows.Forms.Button
End Class
`
